package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateProductCommand represents a request to register a new product in the catalog.
//
// Example:
//
//	cmd, err := NewCreateProductCommand("Fried Chicken", 16000_00)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
//	fmt.Printf("Created product with ID: %s", cmd.ProductID())
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Automatically generates a unique ID for the product.
// Validates that name is not empty and the price is not negative.
func NewCreateProductCommand(name string, priceMinorUnits int64) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(kernel.NewUUID()),
		command.setName(name),
		command.setPrice(priceMinorUnits),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the generated product ID.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name from the command.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product price from the command.
func (c CreateProductCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(priceMinorUnits int64) error {
	price, err := kernel.NewPrice(priceMinorUnits)
	if err != nil {
		return err
	}

	c.price = price
	return nil
}
