package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"
)

// CreateMenuCommandHandler handles the business logic for menu publication.
// Resolves the menu group and the composed products, then delegates the
// price-vs-composition check to the menu aggregate.
//
// Example:
//
//	handler := NewCreateMenuCommandHandler(uowFactory)
//	cmd, _ := NewCreateMenuCommand("Two Fried Chickens", 19000_00, groupID, lines)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // group or a referenced product is not registered
//	case errors.Is(err, menu.ErrPriceExceedsComposition):
//	    // menu is priced above the sum of its parts
//	case err != nil:
//	    // persistence failure
//	}
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuCommandHandler creates a handler for menu publication operations.
func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu publication command.
// Verifies the menu group exists, resolves every referenced product and
// creates the menu, which validates its price against the composition total.
// All reads and the insert run in one transaction, so the price check sees a
// consistent snapshot of product prices.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) error {
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

	if _, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		return err
	}

	menuProducts, productIDs, err := buildMenuProducts(cmd.ProductLines())
	if err != nil {
		return err
	}

	products, err := uow.ProductRepository().GetAllByIDs(ctx, productIDs)
	if err != nil {
		return err
	}
	if len(products) != len(productIDs) {
		return errs.NewObjectNotFoundError("productIds", productIDs)
	}

	newMenu, err := menu.NewMenu(cmd.MenuID(), cmd.Name(), cmd.Price(), cmd.MenuGroupID(), menuProducts, products)
	if err != nil {
		return err
	}

	if err = uow.MenuRepository().Add(ctx, newMenu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildMenuProducts converts request lines to domain menu products and
// collects the distinct product identifiers to resolve.
func buildMenuProducts(lines []MenuProductLine) ([]*menu.MenuProduct, []kernel.UUID, error) {
	menuProducts := make([]*menu.MenuProduct, 0, len(lines))
	productIDs := make([]kernel.UUID, 0, len(lines))
	seen := make(map[kernel.UUID]struct{}, len(lines))

	for _, line := range lines {
		quantity, err := kernel.NewQuantity(line.Quantity)
		if err != nil {
			return nil, nil, err
		}

		menuProduct, err := menu.NewMenuProduct(line.ProductID, quantity)
		if err != nil {
			return nil, nil, err
		}

		menuProducts = append(menuProducts, menuProduct)
		if _, dup := seen[line.ProductID]; !dup {
			seen[line.ProductID] = struct{}{}
			productIDs = append(productIDs, line.ProductID)
		}
	}

	return menuProducts, productIDs, nil
}
