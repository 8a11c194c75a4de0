// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends on the narrowest unit of work that covers the
// repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MenuGroupRepoFactory provides access to the menu group repository within a transaction.
	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderTableRepoFactory provides access to the order table repository within a transaction.
	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	// TableGroupRepoFactory provides access to the table group repository within a transaction.
	TableGroupRepoFactory interface {
		TableGroupRepository() ports.TableGroupRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// MenuGroupUoW manages transactions for menu-group-only operations.
	MenuGroupUoW interface {
		TxManager
		MenuGroupRepoFactory
	}

	// MenuGroupUoWFactory creates new menu group unit of work instances.
	MenuGroupUoWFactory interface {
		Create() MenuGroupUoW
	}

	// MenuUoW manages transactions for menu creation, which resolves the
	// menu group and the composed products before persisting the menu.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
		MenuGroupRepoFactory
		ProductRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// TableUoW manages transactions for table-only operations.
	TableUoW interface {
		TxManager
		OrderTableRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// TableOrdersUoW manages transactions for table operations that must
	// inspect the orders placed against the table.
	TableOrdersUoW interface {
		TxManager
		OrderTableRepoFactory
		OrderRepoFactory
	}

	// TableOrdersUoWFactory creates new table-with-orders unit of work instances.
	TableOrdersUoWFactory interface {
		Create() TableOrdersUoW
	}

	// GroupingUoW manages transactions for forming table groups.
	GroupingUoW interface {
		TxManager
		OrderTableRepoFactory
		TableGroupRepoFactory
	}

	// GroupingUoWFactory creates new grouping unit of work instances.
	GroupingUoWFactory interface {
		Create() GroupingUoW
	}

	// UngroupingUoW manages transactions for dissolving table groups,
	// which also inspects orders on the member tables.
	UngroupingUoW interface {
		TxManager
		OrderTableRepoFactory
		TableGroupRepoFactory
		OrderRepoFactory
	}

	// UngroupingUoWFactory creates new ungrouping unit of work instances.
	UngroupingUoWFactory interface {
		Create() UngroupingUoW
	}

	// OrderCreationUoW manages transactions for opening orders, which
	// resolves the target table and verifies the referenced menus.
	OrderCreationUoW interface {
		TxManager
		OrderRepoFactory
		OrderTableRepoFactory
		MenuRepoFactory
	}

	// OrderCreationUoWFactory creates new order creation unit of work instances.
	OrderCreationUoWFactory interface {
		Create() OrderCreationUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TableGroupUoW manages transactions for table-group-only operations.
	TableGroupUoW interface {
		TxManager
		TableGroupRepoFactory
	}

	// TableGroupUoWFactory creates new table group unit of work instances.
	TableGroupUoWFactory interface {
		Create() TableGroupUoW
	}
)
