package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNoLineItems = errors.New("order requires at least one line item")
)

// OrderLine is one (menu, quantity) entry of an order creation request.
type OrderLine struct {
	MenuID   kernel.UUID
	Quantity int64
}

// CreateOrderCommand represents a request to open a new order against an
// occupied table.
//
// Example:
//
//	lines := []OrderLine{{MenuID: menuID, Quantity: 2}}
//	cmd, err := NewCreateOrderCommand(tableID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Opened order with ID: %s", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderTableID kernel.UUID
	orderLines   []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Automatically generates a unique ID for the order.
// Validates the table reference and that at least one line with a valid
// menu reference and non-negative quantity is present. Menu existence and
// table occupancy are checked by the handler against the stores.
func NewCreateOrderCommand(orderTableID kernel.UUID, orderLines []OrderLine) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setOrderTableID(orderTableID),
		command.setOrderLines(orderLines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderTableID returns the target table ID from the command.
func (c CreateOrderCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// OrderLines returns the requested line items.
func (c CreateOrderCommand) OrderLines() []OrderLine {
	lines := make([]OrderLine, len(c.orderLines))
	copy(lines, c.orderLines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setOrderTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderTableID = id
	return nil
}

func (c *CreateOrderCommand) setOrderLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrNoLineItems
	}

	for _, line := range lines {
		if err := line.MenuID.Validate(); err != nil {
			return err
		}
		if _, err := kernel.NewQuantity(line.Quantity); err != nil {
			return err
		}
	}

	c.orderLines = make([]OrderLine, len(lines))
	copy(c.orderLines, lines)
	return nil
}
