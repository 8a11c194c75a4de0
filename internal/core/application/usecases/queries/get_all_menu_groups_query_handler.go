package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMenuGroupsQueryHandler retrieves every menu group from the database.
type GetAllMenuGroupsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMenuGroupsQueryHandler creates a handler for menu group queries.
func NewGetAllMenuGroupsQueryHandler(db *gorm.DB) GetAllMenuGroupsQueryHandler {
	return GetAllMenuGroupsQueryHandler{db: db}
}

// Handle executes the query to retrieve all menu groups sorted by name.
func (h GetAllMenuGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenuGroupsQuery,
) ([]GetAllMenuGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetAllMenuGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM menu_groups
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllMenuGroupsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name); err != nil {
			return nil, err
		}

		groupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = groupID

		groups = append(groups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
