package menu

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	// ErrMenuGroupNameIsRequired is returned when attempting to create a menu group without a name.
	ErrMenuGroupNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMenuGroupIsNotConstructed is returned when using an improperly initialized MenuGroup.
	ErrMenuGroupIsNotConstructed = errors.New("MenuGroup must be created via NewMenuGroup constructor")
)

// MenuGroup is a named category that menus are filed under, such as
// "lunch specials" or "set menus". Every menu must reference exactly one group.
type MenuGroup struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewMenuGroup creates a new MenuGroup. Also used for rehydration from
// persistence since a group carries no further state.
func NewMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	g := &MenuGroup{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		g.setID(id),
		g.setName(name),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate ensures the MenuGroup was properly constructed through NewMenuGroup.
func (g *MenuGroup) Validate() error {
	if g == nil {
		return ErrMenuGroupIsNotConstructed
	}
	return g.guard.Validate(ErrMenuGroupIsNotConstructed)
}

// ID returns the group's unique identifier.
func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

// Name returns the group's display name.
func (g *MenuGroup) Name() string {
	return g.name
}

func (g *MenuGroup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *MenuGroup) setName(name string) error {
	if name == "" {
		return ErrMenuGroupNameIsRequired
	}
	g.name = name
	return nil
}
