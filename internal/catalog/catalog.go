// Package catalog is the menu collaborator: categories and products that a cart is
// filled from. The menu is static and read-only, so lookups need no locking.
package catalog

import (
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          int
	Name        string
	Description string
}

type Product struct {
	ID          int
	CategoryID  int
	Name        string
	Price       decimal.Decimal
	Description string
}

type Catalog struct {
	categories []Category
	products   []Product
}

// New builds a catalog. Products keep the order they are given in.
func New(categories []Category, products []Product) *Catalog {
	return &Catalog{
		categories: slices.Clone(categories),
		products:   slices.Clone(products),
	}
}

// NewStatic returns the built-in menu.
func NewStatic() *Catalog {
	return New(staticCategories(), staticProducts())
}

func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

func (c *Catalog) Products() []Product {
	return slices.Clone(c.products)
}

// ProductsByCategory fails with ObjectNotFound for an unknown category.
func (c *Catalog) ProductsByCategory(categoryID int) ([]Product, error) {
	if !slices.ContainsFunc(c.categories, func(cat Category) bool { return cat.ID == categoryID }) {
		return nil, errs.NewObjectNotFoundError("categoryId", categoryID)
	}

	var products []Product
	for _, p := range c.products {
		if p.CategoryID == categoryID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (c *Catalog) Product(productID int) (Product, error) {
	i := slices.IndexFunc(c.products, func(p Product) bool { return p.ID == productID })
	if i < 0 {
		return Product{}, errs.NewObjectNotFoundError("productId", productID)
	}
	return c.products[i], nil
}

// LineItem prices quantity units of a catalog product. An unknown product is an
// invalid cart rather than a missing resource.
func (c *Catalog) LineItem(productID, quantity int) (kernel.LineItem, error) {
	p, err := c.Product(productID)
	if err != nil {
		return kernel.LineItem{}, errs.NewInvalidCartErrorWithCause("unknown product", err)
	}
	return kernel.NewLineItem(p.ID, p.Name, p.Price, quantity)
}

func staticCategories() []Category {
	return []Category{
		{ID: 1, Name: "Pizza", Description: "Delicious pizzas"},
		{ID: 2, Name: "Cold Drinks", Description: "Refreshing beverages"},
		{ID: 3, Name: "Breads", Description: "Fresh baked breads"},
	}
}

func staticProducts() []Product {
	price := decimal.RequireFromString
	return []Product{
		{ID: 101, CategoryID: 1, Name: "Margherita", Price: price("8.99"), Description: "Classic pizza with cheese and tomato"},
		{ID: 102, CategoryID: 1, Name: "Pepperoni", Price: price("10.99"), Description: "Pizza with pepperoni toppings"},
		{ID: 103, CategoryID: 1, Name: "Veggie", Price: price("9.99"), Description: "Vegetarian pizza"},
		{ID: 201, CategoryID: 2, Name: "Cola", Price: price("2.99"), Description: "Cold cola drink"},
		{ID: 202, CategoryID: 2, Name: "Lemonade", Price: price("3.49"), Description: "Fresh lemonade"},
		{ID: 203, CategoryID: 2, Name: "Iced Tea", Price: price("2.49"), Description: "Chilled iced tea"},
		{ID: 301, CategoryID: 3, Name: "Garlic Bread", Price: price("4.99"), Description: "Toasted garlic bread"},
		{ID: 302, CategoryID: 3, Name: "Whole Wheat Bread", Price: price("3.99"), Description: "Healthy whole wheat bread"},
		{ID: 303, CategoryID: 3, Name: "Ciabatta", Price: price("5.99"), Description: "Italian ciabatta bread"},
	}
}
