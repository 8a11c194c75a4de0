package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for product registration.
//
// Example:
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	cmd, _ := NewCreateProductCommand("Fried Chicken", 16000_00)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("product registration failed: %w", err)
//	}
//	// Product is now available for menu composition
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration operations.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product registration command.
// Uses a transaction to ensure the product is properly persisted or rolled back on error.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newProduct, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
