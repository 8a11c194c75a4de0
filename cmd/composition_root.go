package cmd

import (
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	var f commands.MenuGroupUoWFactory = FuncMenuGroupUoWFactory(func() commands.MenuGroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuGroupCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderTableCommandHandler() commands.CreateOrderTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderTableCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeTableEmptyCommandHandler() commands.ChangeTableEmptyCommandHandler {
	var f commands.TableOrdersUoWFactory = FuncTableOrdersUoWFactory(func() commands.TableOrdersUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeTableEmptyCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeNumberOfGuestsCommandHandler(f)
}

func (c *CompositionRoot) CreateGroupTablesCommandHandler() commands.GroupTablesCommandHandler {
	var f commands.GroupingUoWFactory = FuncGroupingUoWFactory(func() commands.GroupingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGroupTablesCommandHandler(f)
}

func (c *CompositionRoot) CreateUngroupTablesCommandHandler() commands.UngroupTablesCommandHandler {
	var f commands.UngroupingUoWFactory = FuncUngroupingUoWFactory(func() commands.UngroupingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUngroupTablesCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCreationUoWFactory = FuncOrderCreationUoWFactory(func() commands.OrderCreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeOrphanedTableGroupsCommandHandler() commands.PurgeOrphanedTableGroupsCommandHandler {
	var f commands.TableGroupUoWFactory = FuncTableGroupUoWFactory(func() commands.TableGroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeOrphanedTableGroupsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMenuGroupsQueryHandler() queries.GetAllMenuGroupsQueryHandler {
	return queries.NewGetAllMenuGroupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMenusQueryHandler() queries.GetAllMenusQueryHandler {
	return queries.NewGetAllMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrderTablesQueryHandler() queries.GetAllOrderTablesQueryHandler {
	return queries.NewGetAllOrderTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncMenuGroupUoWFactory func() commands.MenuGroupUoW

func (f FuncMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncTableOrdersUoWFactory func() commands.TableOrdersUoW

func (f FuncTableOrdersUoWFactory) Create() commands.TableOrdersUoW {
	return f()
}

type FuncGroupingUoWFactory func() commands.GroupingUoW

func (f FuncGroupingUoWFactory) Create() commands.GroupingUoW {
	return f()
}

type FuncUngroupingUoWFactory func() commands.UngroupingUoW

func (f FuncUngroupingUoWFactory) Create() commands.UngroupingUoW {
	return f()
}

type FuncOrderCreationUoWFactory func() commands.OrderCreationUoW

func (f FuncOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTableGroupUoWFactory func() commands.TableGroupUoW

func (f FuncTableGroupUoWFactory) Create() commands.TableGroupUoW {
	return f()
}
