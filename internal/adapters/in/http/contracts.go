package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse carries the identifier generated for a newly created resource.
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

// NewProduct is the request body for registering a product.
// Price is expressed in minor currency units.
type NewProduct struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Product is the read model representation of a product.
type Product struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

// NewMenuGroup is the request body for registering a menu group.
type NewMenuGroup struct {
	Name string `json:"name"`
}

// MenuGroup is the read model representation of a menu group.
type MenuGroup struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewMenuProduct is one (product, quantity) entry of a menu creation request.
type NewMenuProduct struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

// NewMenu is the request body for publishing a menu.
type NewMenu struct {
	Name         string           `json:"name"`
	Price        int64            `json:"price"`
	MenuGroupID  uuid.UUID        `json:"menuGroupId"`
	MenuProducts []NewMenuProduct `json:"menuProducts"`
}

// MenuProduct is the read model representation of a menu product line.
type MenuProduct struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

// Menu is the read model representation of a menu.
type Menu struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Price        int64         `json:"price"`
	MenuGroupID  uuid.UUID     `json:"menuGroupId"`
	MenuProducts []MenuProduct `json:"menuProducts"`
}

// NewOrderTable is the request body for registering an order table.
type NewOrderTable struct {
	NumberOfGuests int  `json:"numberOfGuests"`
	Empty          bool `json:"empty"`
}

// OrderTable is the read model representation of an order table.
type OrderTable struct {
	ID             uuid.UUID  `json:"id"`
	NumberOfGuests int        `json:"numberOfGuests"`
	Empty          bool       `json:"empty"`
	TableGroupID   *uuid.UUID `json:"tableGroupId,omitempty"`
}

// ChangeEmpty is the request body for changing a table's occupancy.
type ChangeEmpty struct {
	Empty bool `json:"empty"`
}

// ChangeNumberOfGuests is the request body for changing a table's seated
// guest count.
type ChangeNumberOfGuests struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

// NewTableGroup is the request body for grouping tables.
type NewTableGroup struct {
	OrderTableIDs []uuid.UUID `json:"orderTableIds"`
}

// NewOrderLineItem is one (menu, quantity) entry of an order creation request.
type NewOrderLineItem struct {
	MenuID   uuid.UUID `json:"menuId"`
	Quantity int64     `json:"quantity"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	OrderTableID uuid.UUID          `json:"orderTableId"`
	LineItems    []NewOrderLineItem `json:"orderLineItems"`
}

// OrderLineItem is the read model representation of an order line item.
type OrderLineItem struct {
	MenuID   uuid.UUID `json:"menuId"`
	Quantity int64     `json:"quantity"`
}

// Order is the read model representation of an order.
type Order struct {
	ID           uuid.UUID       `json:"id"`
	OrderTableID uuid.UUID       `json:"orderTableId"`
	Status       string          `json:"orderStatus"`
	OrderedAt    time.Time       `json:"orderedTime"`
	LineItems    []OrderLineItem `json:"orderLineItems"`
}

// ChangeOrderStatus is the request body for advancing an order's status.
type ChangeOrderStatus struct {
	OrderStatus string `json:"orderStatus"`
}
