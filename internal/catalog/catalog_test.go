package catalog_test

import (
	"testing"

	"ordering/internal/catalog"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalog(t *testing.T) {
	c := catalog.NewStatic()

	assert.Len(t, c.Categories(), 3)
	assert.Len(t, c.Products(), 9)
}

func TestCatalog_ProductsByCategory(t *testing.T) {
	c := catalog.NewStatic()

	drinks, err := c.ProductsByCategory(2)
	require.NoError(t, err)
	require.Len(t, drinks, 3)
	assert.Equal(t, "Cola", drinks[0].Name)

	_, err = c.ProductsByCategory(42)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCatalog_Product(t *testing.T) {
	c := catalog.NewStatic()

	p, err := c.Product(302)
	require.NoError(t, err)
	assert.Equal(t, "Whole Wheat Bread", p.Name)
	assert.Equal(t, "3.99", p.Price.StringFixed(2))

	_, err = c.Product(999)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCatalog_LineItem(t *testing.T) {
	c := catalog.NewStatic()

	item, err := c.LineItem(101, 2)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", item.Name())
	assert.Equal(t, "17.98", item.LineTotal().String())

	_, err = c.LineItem(999, 1)
	require.ErrorIs(t, err, errs.ErrInvalidCart)

	_, err = c.LineItem(101, 0)
	require.Error(t, err)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := catalog.NewStatic()

	products := c.Products()
	products[0].Name = "changed"

	p, err := c.Product(101)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", p.Name)
}

func TestToProductResponses(t *testing.T) {
	c := catalog.NewStatic()

	responses, err := catalog.ToProductResponses(c.Products())
	require.NoError(t, err)
	require.Len(t, responses, 9)
	assert.Equal(t, catalog.ProductResponse{
		ID:          101,
		CategoryID:  1,
		Name:        "Margherita",
		Price:       "8.99",
		Description: "Classic pizza with cheese and tomato",
	}, responses[0])

	single, err := catalog.ToProductResponse(c.Products()[3])
	require.NoError(t, err)
	assert.Equal(t, "2.99", single.Price)

	categories, err := catalog.ToCategoryResponses(c.Categories())
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryResponse{ID: 1, Name: "Pizza", Description: "Delicious pizzas"}, categories[0])
}
