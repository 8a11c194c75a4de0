// Package menurepo provides data transfer objects and mapping functions for menu persistence.
// A menu aggregate is stored as a menu row plus one menu_products row per
// product line, kept consistent through GORM associations.
package menurepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuDTO represents the database structure for persisting menu aggregates.
type MenuDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        int64            `gorm:"type:bigint;not null"`
	MenuGroupID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO represents one product line within a menu.
type MenuProductDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	MenuID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for menu product lines.
func (MenuProductDTO) TableName() string {
	return "menu_products"
}

// fromDomain converts a menu domain aggregate to its database representation.
func fromDomain(menu *menu.Menu) MenuDTO {
	menuID := menu.ID().Bytes()
	menuProducts := make([]MenuProductDTO, 0, len(menu.MenuProducts()))

	for _, mp := range menu.MenuProducts() {
		menuProducts = append(menuProducts, MenuProductDTO{
			MenuID:    menuID,
			ProductID: mp.ProductID().Bytes(),
			Quantity:  mp.Quantity().Value(),
		})
	}

	return MenuDTO{
		ID:           menuID,
		Name:         menu.Name(),
		Price:        menu.Price().MinorUnits(),
		MenuGroupID:  menu.MenuGroupID().Bytes(),
		MenuProducts: menuProducts,
	}
}

// toDomain converts a database DTO to a menu domain aggregate.
// Uses RestoreMenu, which does not re-validate the price against the
// composition: product prices may have changed since creation.
func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuGroupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	menuProducts := make([]*menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, mpDto := range dto.MenuProducts {
		mp, mpErr := menuProductToDomain(mpDto)
		if mpErr != nil {
			return nil, mpErr
		}
		menuProducts = append(menuProducts, mp)
	}

	return menu.RestoreMenu(id, dto.Name, price, menuGroupID, menuProducts)
}

func menuProductToDomain(dto MenuProductDTO) (*menu.MenuProduct, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	return menu.NewMenuProduct(productID, quantity)
}
