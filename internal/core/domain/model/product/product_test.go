package product_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()
	validPrice, err := kernel.NewPrice(1500)
	require.NoError(t, err)

	t.Run("should create valid product with all valid parameters", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Fried Chicken", validPrice)

		require.NoError(t, err)
		assert.NotNil(t, p)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Fried Chicken", p.Name())
		assert.True(t, p.Price().IsEqual(validPrice))
	})

	t.Run("should accept zero price", func(t *testing.T) {
		zero, priceErr := kernel.NewPrice(0)
		require.NoError(t, priceErr)

		p, err := product.NewProduct(validID, "Water", zero)

		require.NoError(t, err)
		assert.Equal(t, int64(0), p.Price().MinorUnits())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "Fried Chicken", validPrice)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct(validID, "", validPrice)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "", validPrice)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("constructed product is valid", func(t *testing.T) {
		price, err := kernel.NewPrice(100)
		require.NoError(t, err)
		p, err := product.NewProduct(kernel.NewUUID(), "Coke", price)
		require.NoError(t, err)

		require.NoError(t, p.Validate())
	})

	t.Run("zero value product is invalid", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("nil product is invalid", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_IsEqual(t *testing.T) {
	price, err := kernel.NewPrice(100)
	require.NoError(t, err)
	id := kernel.NewUUID()

	p1, err := product.NewProduct(id, "Coke", price)
	require.NoError(t, err)
	p2, err := product.NewProduct(id, "Sprite", price)
	require.NoError(t, err)
	p3, err := product.NewProduct(kernel.NewUUID(), "Coke", price)
	require.NoError(t, err)

	assert.True(t, p1.IsEqual(p2))
	assert.False(t, p1.IsEqual(p3))
	assert.False(t, p1.IsEqual(nil))
}
