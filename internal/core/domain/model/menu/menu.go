package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	// ErrMenuNameIsRequired is returned when attempting to create a menu without a name.
	ErrMenuNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMenuGroupIsRequired is returned when attempting to create a menu without a menu group reference.
	ErrMenuGroupIsRequired = errs.NewValueIsRequiredError("menu group")
	// ErrMenuIsNotConstructed is returned when using an improperly initialized Menu.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu constructor")
	// ErrPriceExceedsComposition is returned when a menu is priced above the
	// total price of the products it is composed of.
	ErrPriceExceedsComposition = errors.New("menu price exceeds the total price of its products")
)

// Menu represents a purchasable combination of products at a fixed price.
// It is an aggregate root owning its MenuProduct composition lines; products
// and the menu group are referenced by identifier only.
//
// Business rules:
//   - Menu must have a valid UUID, a non-empty name, and a menu group reference
//   - Price is non-negative (enforced by kernel.Price)
//   - At creation, price must not exceed the composition total resolved from
//     the product prices supplied to NewMenu (snapshot semantics: the check
//     is not repeated when product prices change later)
type Menu struct {
	id           kernel.UUID
	name         string
	price        kernel.Price
	menuGroupID  kernel.UUID
	menuProducts []*MenuProduct

	guard guard.ConstructorGuard
}

// NewMenu creates a new Menu and validates its price against the composition.
//
// products must contain the resolved Product for every product referenced by
// menuProducts; a missing product fails with an object-not-found violation.
// A price above the composition total fails with ErrPriceExceedsComposition.
// The validation is pure: NewMenu performs no I/O.
func NewMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts []*MenuProduct,
	products []*product.Product,
) (*Menu, error) {
	m := &Menu{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setMenuGroupID(menuGroupID),
		m.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}

	if err := m.validatePriceAgainstComposition(products); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenu reconstructs a Menu aggregate from persistent storage.
// Unlike NewMenu it does not re-validate the price against the composition:
// the invariant was checked against the product prices in effect at creation
// time, and those prices may have changed since.
func RestoreMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts []*MenuProduct,
) (*Menu, error) {
	m := &Menu{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setMenuGroupID(menuGroupID),
		m.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Menu instance was properly constructed.
func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// IsEqual compares two menus by their unique identifiers.
func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// Name returns the menu's display name.
func (m *Menu) Name() string {
	return m.name
}

// Price returns the menu's fixed selling price.
func (m *Menu) Price() kernel.Price {
	return m.price
}

// MenuGroupID returns the identifier of the group the menu belongs to.
func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

// MenuProducts returns the menu's composition lines.
// The returned slice is a copy; mutating it does not affect the menu.
func (m *Menu) MenuProducts() []*MenuProduct {
	lines := make([]*MenuProduct, len(m.menuProducts))
	copy(lines, m.menuProducts)
	return lines
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return ErrMenuNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return ErrMenuGroupIsRequired
	}
	m.menuGroupID = menuGroupID
	return nil
}

func (m *Menu) setMenuProducts(menuProducts []*MenuProduct) error {
	for _, mp := range menuProducts {
		if err := mp.Validate(); err != nil {
			return err
		}
	}
	m.menuProducts = make([]*MenuProduct, len(menuProducts))
	copy(m.menuProducts, menuProducts)
	return nil
}

// validatePriceAgainstComposition resolves each composition line against the
// supplied products and rejects a price above the summed line totals.
func (m *Menu) validatePriceAgainstComposition(products []*product.Product) error {
	resolved := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		resolved[p.ID()] = p
	}

	var total kernel.Price
	for _, line := range m.menuProducts {
		p, ok := resolved[line.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("productId", line.ProductID().String())
		}
		total = total.Add(p.Price().Multiply(line.Quantity()))
	}

	if m.price.IsGreaterThan(total) {
		return fmt.Errorf("menu %s: price %s exceeds composition total %s: %w",
			m.id, m.price, total, ErrPriceExceedsComposition)
	}

	return nil
}
