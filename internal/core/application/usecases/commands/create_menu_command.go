package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// MenuProductLine is one (product, quantity) entry of a menu creation request.
type MenuProductLine struct {
	ProductID kernel.UUID
	Quantity  int64
}

// CreateMenuCommand represents a request to publish a new menu: a named,
// priced bundle of products filed under a menu group.
//
// Example:
//
//	lines := []MenuProductLine{{ProductID: chickenID, Quantity: 2}}
//	cmd, err := NewCreateMenuCommand("Two Fried Chickens", 19000_00, groupID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid menu data: %w", err)
//	}
//
//	handler := NewCreateMenuCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create menu: %w", err)
//	}
//	fmt.Printf("Created menu with ID: %s", cmd.MenuID())
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID       kernel.UUID
	name         string
	price        kernel.Price
	menuGroupID  kernel.UUID
	productLines []MenuProductLine

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to publish a new menu.
// Automatically generates a unique ID for the menu.
// Validates the name, the price, the group reference and that every product
// line has a valid product reference and a non-negative quantity. An empty
// composition is allowed; the price invariant then caps the price at zero.
// Whether the referenced group and products actually exist is checked by the
// handler against the stores.
func NewCreateMenuCommand(
	name string,
	priceMinorUnits int64,
	menuGroupID kernel.UUID,
	productLines []MenuProductLine,
) (CreateMenuCommand, error) {
	command := CreateMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMenuID(kernel.NewUUID()),
		command.setName(name),
		command.setPrice(priceMinorUnits),
		command.setMenuGroupID(menuGroupID),
		command.setProductLines(productLines),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// MenuID returns the generated menu ID.
func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Name returns the menu name from the command.
func (c CreateMenuCommand) Name() string {
	return c.name
}

// Price returns the menu price from the command.
func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

// MenuGroupID returns the target menu group ID from the command.
func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// ProductLines returns the requested menu composition.
func (c CreateMenuCommand) ProductLines() []MenuProductLine {
	lines := make([]MenuProductLine, len(c.productLines))
	copy(lines, c.productLines)
	return lines
}

func (c *CreateMenuCommand) setMenuID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuID = id
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(priceMinorUnits int64) error {
	price, err := kernel.NewPrice(priceMinorUnits)
	if err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.menuGroupID = id
	return nil
}

func (c *CreateMenuCommand) setProductLines(lines []MenuProductLine) error {
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if _, err := kernel.NewQuantity(line.Quantity); err != nil {
			return err
		}
	}

	c.productLines = make([]MenuProductLine, len(lines))
	copy(c.productLines, lines)
	return nil
}
