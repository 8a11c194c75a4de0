package tablegrouprepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableGroupDTO is the database representation of the TableGroup aggregate.
// Group membership is not stored here, it lives in the table_group_id
// column of order_tables.
type TableGroupDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName returns the database table name for GORM.
func (TableGroupDTO) TableName() string {
	return "table_groups"
}

// fromDomain converts a domain table group to its database representation.
func fromDomain(aggregate *table.TableGroup) TableGroupDTO {
	return TableGroupDTO{
		ID:        aggregate.ID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
	}
}
