// Package menugrouprepo provides data transfer objects and mapping functions for menu group persistence.
package menugrouprepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuGroupDTO represents the database structure for persisting menu group aggregates.
type MenuGroupDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for menu group entities.
func (MenuGroupDTO) TableName() string {
	return "menu_groups"
}

// fromDomain converts a menu group domain aggregate to its database representation.
func fromDomain(group *menu.MenuGroup) MenuGroupDTO {
	return MenuGroupDTO{
		ID:   group.ID().Bytes(),
		Name: group.Name(),
	}
}

// toDomain converts a database DTO to a menu group domain aggregate.
func toDomain(dto MenuGroupDTO) (*menu.MenuGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewMenuGroup(id, dto.Name)
}
