package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrderTablesQueryHandler retrieves every table from the database.
type GetAllOrderTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrderTablesQueryHandler creates a handler for table list queries.
func NewGetAllOrderTablesQueryHandler(db *gorm.DB) GetAllOrderTablesQueryHandler {
	return GetAllOrderTablesQueryHandler{db: db}
}

// Handle executes the query to retrieve all tables sorted by ID.
func (h GetAllOrderTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrderTablesQuery,
) ([]GetAllOrderTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetAllOrderTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number_of_guests,
			empty,
			table_group_id
		FROM order_tables
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrderTablesQueryResponse
		var id uuid.UUID
		var groupRaw *uuid.UUID

		if err = rows.Scan(&id, &resp.NumberOfGuests, &resp.Empty, &groupRaw); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = tableID

		if groupRaw != nil {
			groupID, idErr := kernel.UUIDFromBytes((*groupRaw)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.TableGroupID = &groupID
		}

		tables = append(tables, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
