// Package http exposes the application's use cases over a REST API.
// Request and response contracts are defined in contracts.go; failures
// are mapped onto HTTP statuses by errorStatus.
package http

import (
	"errors"
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by coordinating between the REST contracts
// and the application use cases.
type Server struct {
	// Command handlers
	createProductHandler        commands.CreateProductCommandHandler
	createMenuGroupHandler      commands.CreateMenuGroupCommandHandler
	createMenuHandler           commands.CreateMenuCommandHandler
	createOrderTableHandler     commands.CreateOrderTableCommandHandler
	changeTableEmptyHandler     commands.ChangeTableEmptyCommandHandler
	changeNumberOfGuestsHandler commands.ChangeNumberOfGuestsCommandHandler
	groupTablesHandler          commands.GroupTablesCommandHandler
	ungroupTablesHandler        commands.UngroupTablesCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getAllProductsHandler    queries.GetAllProductsQueryHandler
	getAllMenuGroupsHandler  queries.GetAllMenuGroupsQueryHandler
	getAllMenusHandler       queries.GetAllMenusQueryHandler
	getAllOrderTablesHandler queries.GetAllOrderTablesQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	createMenuGroupHandler commands.CreateMenuGroupCommandHandler,
	createMenuHandler commands.CreateMenuCommandHandler,
	createOrderTableHandler commands.CreateOrderTableCommandHandler,
	changeTableEmptyHandler commands.ChangeTableEmptyCommandHandler,
	changeNumberOfGuestsHandler commands.ChangeNumberOfGuestsCommandHandler,
	groupTablesHandler commands.GroupTablesCommandHandler,
	ungroupTablesHandler commands.UngroupTablesCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	getAllMenuGroupsHandler queries.GetAllMenuGroupsQueryHandler,
	getAllMenusHandler queries.GetAllMenusQueryHandler,
	getAllOrderTablesHandler queries.GetAllOrderTablesQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		createProductHandler:        createProductHandler,
		createMenuGroupHandler:      createMenuGroupHandler,
		createMenuHandler:           createMenuHandler,
		createOrderTableHandler:     createOrderTableHandler,
		changeTableEmptyHandler:     changeTableEmptyHandler,
		changeNumberOfGuestsHandler: changeNumberOfGuestsHandler,
		groupTablesHandler:          groupTablesHandler,
		ungroupTablesHandler:        ungroupTablesHandler,
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		getAllProductsHandler:       getAllProductsHandler,
		getAllMenuGroupsHandler:     getAllMenuGroupsHandler,
		getAllMenusHandler:          getAllMenusHandler,
		getAllOrderTablesHandler:    getAllOrderTablesHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
	}
}

// RegisterRoutes attaches every API route to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)

	api.POST("/menu-groups", s.CreateMenuGroup)
	api.GET("/menu-groups", s.GetMenuGroups)

	api.POST("/menus", s.CreateMenu)
	api.GET("/menus", s.GetMenus)

	api.POST("/tables", s.CreateOrderTable)
	api.GET("/tables", s.GetOrderTables)
	api.PUT("/tables/:id/empty", s.ChangeOrderTableEmpty)
	api.PUT("/tables/:id/number-of-guests", s.ChangeOrderTableNumberOfGuests)

	api.POST("/table-groups", s.CreateTableGroup)
	api.DELETE("/table-groups/:id", s.UngroupTables)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/:id/order-status", s.ChangeOrderStatus)
}

// CreateProduct handles POST /api/v1/products - registers a new product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.ProductID().Bytes()})
}

// GetProducts handles GET /api/v1/products - retrieves all products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:    p.ID.Bytes(),
			Name:  p.Name,
			Price: p.Price.MinorUnits(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuGroup handles POST /api/v1/menu-groups - registers a new menu group.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var body NewMenuGroup
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMenuGroupCommand(body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid menu group data: "+err.Error())
	}

	if err := s.createMenuGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.MenuGroupID().Bytes()})
}

// GetMenuGroups handles GET /api/v1/menu-groups - retrieves all menu groups.
func (s *Server) GetMenuGroups(ctx echo.Context) error {
	groups, err := s.getAllMenuGroupsHandler.Handle(ctx.Request().Context(), queries.NewGetAllMenuGroupsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve menu groups")
	}

	response := make([]MenuGroup, len(groups))
	for i, g := range groups {
		response[i] = MenuGroup{
			ID:   g.ID.Bytes(),
			Name: g.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/v1/menus - publishes a new menu.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var body NewMenu
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuGroupID, err := kernel.UUIDFromBytes(body.MenuGroupID[:])
	if err != nil {
		return badRequest(ctx, "Invalid menu group id")
	}

	lines := make([]commands.MenuProductLine, 0, len(body.MenuProducts))
	for _, mp := range body.MenuProducts {
		productID, err := kernel.UUIDFromBytes(mp.ProductID[:])
		if err != nil {
			return badRequest(ctx, "Invalid product id")
		}
		lines = append(lines, commands.MenuProductLine{
			ProductID: productID,
			Quantity:  mp.Quantity,
		})
	}

	cmd, err := commands.NewCreateMenuCommand(body.Name, body.Price, menuGroupID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid menu data: "+err.Error())
	}

	if err := s.createMenuHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.MenuID().Bytes()})
}

// GetMenus handles GET /api/v1/menus - retrieves all menus with their
// product lines.
func (s *Server) GetMenus(ctx echo.Context) error {
	menus, err := s.getAllMenusHandler.Handle(ctx.Request().Context(), queries.NewGetAllMenusQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve menus")
	}

	response := make([]Menu, len(menus))
	for i, m := range menus {
		menuProducts := make([]MenuProduct, len(m.MenuProducts))
		for j, mp := range m.MenuProducts {
			menuProducts[j] = MenuProduct{
				ProductID: mp.ProductID.Bytes(),
				Quantity:  mp.Quantity,
			}
		}

		response[i] = Menu{
			ID:           m.ID.Bytes(),
			Name:         m.Name,
			Price:        m.Price.MinorUnits(),
			MenuGroupID:  m.MenuGroupID.Bytes(),
			MenuProducts: menuProducts,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderTable handles POST /api/v1/tables - registers a new order table.
func (s *Server) CreateOrderTable(ctx echo.Context) error {
	var body NewOrderTable
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderTableCommand(body.NumberOfGuests, body.Empty)
	if err != nil {
		return badRequest(ctx, "Invalid table data: "+err.Error())
	}

	if err := s.createOrderTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.OrderTableID().Bytes()})
}

// GetOrderTables handles GET /api/v1/tables - retrieves all order tables.
func (s *Server) GetOrderTables(ctx echo.Context) error {
	tables, err := s.getAllOrderTablesHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrderTablesQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve tables")
	}

	response := make([]OrderTable, len(tables))
	for i, t := range tables {
		item := OrderTable{
			ID:             t.ID.Bytes(),
			NumberOfGuests: t.NumberOfGuests,
			Empty:          t.Empty,
		}
		if t.TableGroupID != nil {
			groupID := t.TableGroupID.Bytes()
			item.TableGroupID = &groupID
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderTableEmpty handles PUT /api/v1/tables/:id/empty - changes
// a table's occupancy.
func (s *Server) ChangeOrderTableEmpty(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid table id")
	}

	var body ChangeEmpty
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeTableEmptyCommand(tableID, body.Empty)
	if err != nil {
		return badRequest(ctx, "Invalid table data: "+err.Error())
	}

	if err := s.changeTableEmptyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeOrderTableNumberOfGuests handles PUT /api/v1/tables/:id/number-of-guests -
// changes the seated guest count of an occupied table.
func (s *Server) ChangeOrderTableNumberOfGuests(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid table id")
	}

	var body ChangeNumberOfGuests
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(tableID, body.NumberOfGuests)
	if err != nil {
		return badRequest(ctx, "Invalid table data: "+err.Error())
	}

	if err := s.changeNumberOfGuestsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateTableGroup handles POST /api/v1/table-groups - groups empty tables
// for a combined party.
func (s *Server) CreateTableGroup(ctx echo.Context) error {
	var body NewTableGroup
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tableIDs := make([]kernel.UUID, 0, len(body.OrderTableIDs))
	for _, raw := range body.OrderTableIDs {
		tableID, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return badRequest(ctx, "Invalid table id")
		}
		tableIDs = append(tableIDs, tableID)
	}

	cmd, err := commands.NewGroupTablesCommand(tableIDs)
	if err != nil {
		return badRequest(ctx, "Invalid table group data: "+err.Error())
	}

	if err := s.groupTablesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.TableGroupID().Bytes()})
}

// UngroupTables handles DELETE /api/v1/table-groups/:id - dissolves a table
// group, releasing its tables.
func (s *Server) UngroupTables(ctx echo.Context) error {
	groupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid table group id")
	}

	cmd, err := commands.NewUngroupTablesCommand(groupID)
	if err != nil {
		return badRequest(ctx, "Invalid table group data: "+err.Error())
	}

	if err := s.ungroupTablesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - places an order at an occupied table.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tableID, err := kernel.UUIDFromBytes(body.OrderTableID[:])
	if err != nil {
		return badRequest(ctx, "Invalid table id")
	}

	lines := make([]commands.OrderLine, 0, len(body.LineItems))
	for _, item := range body.LineItems {
		menuID, err := kernel.UUIDFromBytes(item.MenuID[:])
		if err != nil {
			return badRequest(ctx, "Invalid menu id")
		}
		lines = append(lines, commands.OrderLine{
			MenuID:   menuID,
			Quantity: item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(tableID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.OrderID().Bytes()})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders with their
// line items.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		lineItems := make([]OrderLineItem, len(o.LineItems))
		for j, item := range o.LineItems {
			lineItems[j] = OrderLineItem{
				MenuID:   item.MenuID.Bytes(),
				Quantity: item.Quantity,
			}
		}

		response[i] = Order{
			ID:           o.ID.Bytes(),
			OrderTableID: o.OrderTableID.Bytes(),
			Status:       o.Status.String(),
			OrderedAt:    o.OrderedAt,
			LineItems:    lineItems,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/order-status - advances
// an order through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body ChangeOrderStatus
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(body.OrderStatus)
	if err != nil {
		return badRequest(ctx, "Invalid order status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandFailure(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// commandFailure maps a use case error onto an HTTP error response.
// Missing referenced objects map to 404, business rule violations to 409,
// validation failures to 400 and everything else to 500.
func commandFailure(ctx echo.Context, err error) error {
	code := errorStatus(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, table.ErrTableIsEmpty),
		errors.Is(err, table.ErrTableGrouped),
		errors.Is(err, table.ErrTableNotAvailableForGrouping),
		errors.Is(err, order.ErrOrderAlreadyCompleted),
		errors.Is(err, order.ErrStatusMovesBackwards),
		errors.Is(err, menu.ErrPriceExceedsComposition),
		errors.Is(err, commands.ErrTableHasActiveOrder),
		errors.Is(err, services.ErrActiveOrderInGroup):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
