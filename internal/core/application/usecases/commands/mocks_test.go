package commands_test

import (
	"context"
	"time"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockMenuGroupRepository struct {
	mock.Mock
}

func (m *MockMenuGroupRepository) Add(ctx context.Context, aggregate *menu.MenuGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuGroup), args.Error(1)
}

func (m *MockMenuGroupRepository) GetAll(ctx context.Context) ([]*menu.MenuGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*menu.MenuGroup), args.Error(1)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) CountByIDs(ctx context.Context, ids []kernel.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Menu, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

type MockOrderTableRepository struct {
	mock.Mock
}

func (m *MockOrderTableRepository) Add(ctx context.Context, aggregate *table.OrderTable) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Update(ctx context.Context, aggregate *table.OrderTable) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) GetAllByGroupID(ctx context.Context, groupID kernel.UUID) ([]*table.OrderTable, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

func (m *MockOrderTableRepository) GetAll(ctx context.Context) ([]*table.OrderTable, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

type MockTableGroupRepository struct {
	mock.Mock
}

func (m *MockTableGroupRepository) Add(ctx context.Context, aggregate *table.TableGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.TableGroup), args.Error(1)
}

func (m *MockTableGroupRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTableGroupRepository) DeleteOrphaned(ctx context.Context, createdBefore time.Time) (int64, error) {
	args := m.Called(ctx, createdBefore)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByTableIDs(ctx context.Context, tableIDs []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, tableIDs)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockUoW satisfies every command unit of work interface so one mock serves
// all handler tests.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) MenuGroupRepository() ports.MenuGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuGroupRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}

func (m *MockUoW) TableGroupRepository() ports.TableGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.TableGroupRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockProductUoWFactory struct {
	mock.Mock
}

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockMenuGroupUoWFactory struct {
	mock.Mock
}

func (m *MockMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuGroupUoW)
}

type MockMenuUoWFactory struct {
	mock.Mock
}

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockTableUoWFactory struct {
	mock.Mock
}

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

type MockTableOrdersUoWFactory struct {
	mock.Mock
}

func (m *MockTableOrdersUoWFactory) Create() commands.TableOrdersUoW {
	args := m.Called()
	return args.Get(0).(commands.TableOrdersUoW)
}

type MockGroupingUoWFactory struct {
	mock.Mock
}

func (m *MockGroupingUoWFactory) Create() commands.GroupingUoW {
	args := m.Called()
	return args.Get(0).(commands.GroupingUoW)
}

type MockUngroupingUoWFactory struct {
	mock.Mock
}

func (m *MockUngroupingUoWFactory) Create() commands.UngroupingUoW {
	args := m.Called()
	return args.Get(0).(commands.UngroupingUoW)
}

type MockOrderCreationUoWFactory struct {
	mock.Mock
}

func (m *MockOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCreationUoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTableGroupUoWFactory struct {
	mock.Mock
}

func (m *MockTableGroupUoWFactory) Create() commands.TableGroupUoW {
	args := m.Called()
	return args.Get(0).(commands.TableGroupUoW)
}
