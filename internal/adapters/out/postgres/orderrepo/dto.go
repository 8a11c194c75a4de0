package orderrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of the Order aggregate.
type OrderDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderTableID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status       int                `gorm:"type:int;not null"`
	OrderedAt    time.Time          `gorm:"type:timestamptz;not null"`
	LineItems    []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for GORM.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO is the database representation of an order line item.
type OrderLineItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int64     `gorm:"type:bigint;not null"`
}

// TableName returns the database table name for GORM.
func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts a domain order to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lineItems := make([]OrderLineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		lineItems = append(lineItems, OrderLineItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity().Value(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderTableID: aggregate.OrderTableID().Bytes(),
		Status:       int(aggregate.Status()),
		OrderedAt:    aggregate.OrderedAt(),
		LineItems:    lineItems,
	}
}

// toDomain restores a domain order from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.OrderTableID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.OrderLineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, err := lineItemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, item)
	}

	return order.RestoreOrder(id, tableID, order.Status(dto.Status), dto.OrderedAt, lineItems)
}

func lineItemToDomain(dto OrderLineItemDTO) (*order.OrderLineItem, error) {
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	return order.NewOrderLineItem(menuID, quantity)
}
