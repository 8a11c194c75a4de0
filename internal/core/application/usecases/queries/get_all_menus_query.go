package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllMenusQueryIsNotConstructed = errors.New(
	"GetAllMenusQuery must be created via NewGetAllMenusQuery constructor",
)

// GetAllMenusQuery retrieves every published menu with its product lines.
type GetAllMenusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMenusQuery creates a query to retrieve all menus.
func NewGetAllMenusQuery() GetAllMenusQuery {
	return GetAllMenusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenusQueryIsNotConstructed)
}

// MenuProductResponse is one product line of a menu in the read model.
type MenuProductResponse struct {
	ProductID kernel.UUID
	Quantity  int64
}

// GetAllMenusQueryResponse represents menu information in the read model.
type GetAllMenusQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Price        kernel.Price
	MenuGroupID  kernel.UUID
	MenuProducts []MenuProductResponse
}
