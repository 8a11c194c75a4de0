package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllMenuGroupsQueryIsNotConstructed = errors.New(
	"GetAllMenuGroupsQuery must be created via NewGetAllMenuGroupsQuery constructor",
)

// GetAllMenuGroupsQuery retrieves every registered menu group.
type GetAllMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMenuGroupsQuery creates a query to retrieve all menu groups.
func NewGetAllMenuGroupsQuery() GetAllMenuGroupsQuery {
	return GetAllMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenuGroupsQueryIsNotConstructed)
}

// GetAllMenuGroupsQueryResponse represents menu group information in the read model.
type GetAllMenuGroupsQueryResponse struct {
	ID   kernel.UUID
	Name string
}
