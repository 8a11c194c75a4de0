package tablerepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// OrderTableDTO is the database representation of the OrderTable aggregate.
type OrderTableDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	NumberOfGuests int        `gorm:"type:int;not null"`
	Empty          bool       `gorm:"type:boolean;not null"`
	TableGroupID   *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name for GORM.
func (OrderTableDTO) TableName() string {
	return "order_tables"
}

// fromDomain converts a domain order table to its database representation.
func fromDomain(aggregate *table.OrderTable) OrderTableDTO {
	var groupID *uuid.UUID
	if aggregate.TableGroupID() != nil {
		raw := aggregate.TableGroupID().Bytes()
		groupID = &raw
	}

	return OrderTableDTO{
		ID:             aggregate.ID().Bytes(),
		NumberOfGuests: aggregate.NumberOfGuests(),
		Empty:          aggregate.IsEmpty(),
		TableGroupID:   groupID,
	}
}

// toDomain restores a domain order table from its database representation.
func toDomain(dto OrderTableDTO) (*table.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var groupID *kernel.UUID
	if dto.TableGroupID != nil {
		restored, err := kernel.UUIDFromBytes(dto.TableGroupID[:])
		if err != nil {
			return nil, err
		}
		groupID = &restored
	}

	return table.RestoreOrderTable(id, dto.NumberOfGuests, dto.Empty, groupID)
}
