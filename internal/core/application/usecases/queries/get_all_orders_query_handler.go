package queries

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves every order with its line items from
// the database. Orders and lines are fetched in two queries and joined in
// memory to avoid row multiplication.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders sorted by creation time.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.fetchLineItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetAllOrdersQueryHandler) fetchOrders(
	ctx context.Context,
) ([]GetAllOrdersQueryResponse, map[kernel.UUID]int, error) {
	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_table_id,
			status,
			ordered_at
		FROM orders
		ORDER BY ordered_at
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id, tableRaw uuid.UUID
		var status int
		var orderedAt time.Time

		if err = rows.Scan(&id, &tableRaw, &status, &orderedAt); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.ID = orderID

		tableID, idErr := kernel.UUIDFromBytes(tableRaw[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.OrderTableID = tableID

		resp.Status = order.Status(status)
		resp.OrderedAt = orderedAt
		resp.LineItems = make([]OrderLineItemResponse, 0)

		index[orderID] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetAllOrdersQueryHandler) fetchLineItems(
	ctx context.Context,
	orders []GetAllOrdersQueryResponse,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_id,
			quantity
		FROM order_line_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderRaw, menuRaw uuid.UUID
		var quantity int64

		if err = rows.Scan(&orderRaw, &menuRaw, &quantity); err != nil {
			return err
		}

		orderID, idErr := kernel.UUIDFromBytes(orderRaw[:])
		if idErr != nil {
			return idErr
		}
		menuID, idErr := kernel.UUIDFromBytes(menuRaw[:])
		if idErr != nil {
			return idErr
		}

		if i, ok := index[orderID]; ok {
			orders[i].LineItems = append(orders[i].LineItems, OrderLineItemResponse{
				MenuID:   menuID,
				Quantity: quantity,
			})
		}
	}

	return rows.Err()
}
