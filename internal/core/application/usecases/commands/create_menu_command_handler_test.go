package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registeredProduct(t *testing.T, priceMinorUnits int64) *product.Product {
	t.Helper()
	price, err := kernel.NewPrice(priceMinorUnits)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "Fried Chicken", price)
	require.NoError(t, err)
	return p
}

func TestCreateMenuCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	chicken := registeredProduct(t, 16000_00)
	group, err := menu.NewMenuGroup(kernel.NewUUID(), "Recommended")
	require.NoError(t, err)

	lines := []commands.MenuProductLine{{ProductID: chicken.ID(), Quantity: 2}}
	cmd, err := commands.NewCreateMenuCommand("Two Fried Chickens", 19000_00, group.ID(), lines)
	require.NoError(t, err)

	var capturedMenu *menu.Menu
	mockMenuRepo := new(MockMenuRepository)
	mockGroupRepo := new(MockMenuGroupRepository)
	mockProductRepo := new(MockProductRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMenuUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("MenuGroupRepository").Return(mockGroupRepo).Once()
	mockGroupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once()
	mockUoW.On("ProductRepository").Return(mockProductRepo).Once()
	mockProductRepo.On("GetAllByIDs", ctx, []kernel.UUID{chicken.ID()}).
		Return([]*product.Product{chicken}, nil).Once()
	mockUoW.On("MenuRepository").Return(mockMenuRepo).Once()
	mockMenuRepo.On("Add", ctx, mock.MatchedBy(func(m *menu.Menu) bool {
		capturedMenu = m
		return true
	})).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateMenuCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedMenu)
	assert.True(t, capturedMenu.ID().IsEqual(cmd.MenuID()))
	assert.Equal(t, "Two Fried Chickens", capturedMenu.Name())
	assert.True(t, capturedMenu.MenuGroupID().IsEqual(group.ID()))
	require.Len(t, capturedMenu.MenuProducts(), 1)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockMenuRepo.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_MenuGroupNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	groupID := kernel.NewUUID()
	lines := []commands.MenuProductLine{{ProductID: kernel.NewUUID(), Quantity: 1}}
	cmd, err := commands.NewCreateMenuCommand("Two Fried Chickens", 1000, groupID, lines)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("menuGroupId", groupID)
	mockGroupRepo := new(MockMenuGroupRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMenuUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("MenuGroupRepository").Return(mockGroupRepo).Once()
	mockGroupRepo.On("Get", ctx, groupID).Return(nil, notFound).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateMenuCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_ProductNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	group, err := menu.NewMenuGroup(kernel.NewUUID(), "Recommended")
	require.NoError(t, err)
	missingProductID := kernel.NewUUID()

	lines := []commands.MenuProductLine{{ProductID: missingProductID, Quantity: 1}}
	cmd, err := commands.NewCreateMenuCommand("Two Fried Chickens", 1000, group.ID(), lines)
	require.NoError(t, err)

	mockGroupRepo := new(MockMenuGroupRepository)
	mockProductRepo := new(MockProductRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMenuUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("MenuGroupRepository").Return(mockGroupRepo).Once()
	mockGroupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once()
	mockUoW.On("ProductRepository").Return(mockProductRepo).Once()
	mockProductRepo.On("GetAllByIDs", ctx, []kernel.UUID{missingProductID}).
		Return([]*product.Product{}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateMenuCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_PriceExceedsComposition(t *testing.T) {
	// Arrange
	ctx := t.Context()
	chicken := registeredProduct(t, 16000_00)
	group, err := menu.NewMenuGroup(kernel.NewUUID(), "Recommended")
	require.NoError(t, err)

	// one chicken, menu priced above it
	lines := []commands.MenuProductLine{{ProductID: chicken.ID(), Quantity: 1}}
	cmd, err := commands.NewCreateMenuCommand("Overpriced Chicken", 16000_01, group.ID(), lines)
	require.NoError(t, err)

	mockGroupRepo := new(MockMenuGroupRepository)
	mockProductRepo := new(MockProductRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMenuUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("MenuGroupRepository").Return(mockGroupRepo).Once()
	mockGroupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once()
	mockUoW.On("ProductRepository").Return(mockProductRepo).Once()
	mockProductRepo.On("GetAllByIDs", ctx, []kernel.UUID{chicken.ID()}).
		Return([]*product.Product{chicken}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateMenuCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, menu.ErrPriceExceedsComposition)
	mockUoW.AssertExpectations(t)
}
