package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMenusQueryHandler retrieves every menu with its product lines from
// the database. Menus and lines are fetched in two queries and joined in
// memory to avoid row multiplication.
type GetAllMenusQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMenusQueryHandler creates a handler for menu list queries.
func NewGetAllMenusQueryHandler(db *gorm.DB) GetAllMenusQueryHandler {
	return GetAllMenusQueryHandler{db: db}
}

// Handle executes the query to retrieve all menus sorted by name.
func (h GetAllMenusQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenusQuery,
) ([]GetAllMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus, index, err := h.fetchMenus(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.fetchMenuProducts(ctx, menus, index); err != nil {
		return nil, err
	}

	return menus, nil
}

func (h GetAllMenusQueryHandler) fetchMenus(
	ctx context.Context,
) ([]GetAllMenusQueryResponse, map[kernel.UUID]int, error) {
	menus := make([]GetAllMenusQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			menu_group_id
		FROM menus
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllMenusQueryResponse
		var id, groupID uuid.UUID
		var priceMinorUnits int64

		if err = rows.Scan(&id, &resp.Name, &priceMinorUnits, &groupID); err != nil {
			return nil, nil, err
		}

		menuID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.ID = menuID

		menuGroupID, idErr := kernel.UUIDFromBytes(groupID[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.MenuGroupID = menuGroupID

		price, priceErr := kernel.NewPrice(priceMinorUnits)
		if priceErr != nil {
			return nil, nil, priceErr
		}
		resp.Price = price
		resp.MenuProducts = make([]MenuProductResponse, 0)

		index[menuID] = len(menus)
		menus = append(menus, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return menus, index, nil
}

func (h GetAllMenusQueryHandler) fetchMenuProducts(
	ctx context.Context,
	menus []GetAllMenusQueryResponse,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_id,
			product_id,
			quantity
		FROM menu_products
		ORDER BY id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var menuRaw, productRaw uuid.UUID
		var quantity int64

		if err = rows.Scan(&menuRaw, &productRaw, &quantity); err != nil {
			return err
		}

		menuID, idErr := kernel.UUIDFromBytes(menuRaw[:])
		if idErr != nil {
			return idErr
		}
		productID, idErr := kernel.UUIDFromBytes(productRaw[:])
		if idErr != nil {
			return idErr
		}

		if i, ok := index[menuID]; ok {
			menus[i].MenuProducts = append(menus[i].MenuProducts, MenuProductResponse{
				ProductID: productID,
				Quantity:  quantity,
			})
		}
	}

	return rows.Err()
}
