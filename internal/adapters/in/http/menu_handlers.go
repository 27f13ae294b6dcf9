package http

import (
	"net/http"
	"strconv"

	"ordering/internal/catalog"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetCategories handles GET /menu/categories.
//
//	@Summary	List menu categories
//	@Tags		menu
//	@ID			getCategories
//	@Produce	json
//	@Success	200	{array}	catalog.CategoryResponse
//	@Router		/menu/categories [get]
func (s *Server) GetCategories(c echo.Context) error {
	response, err := catalog.ToCategoryResponses(s.menu.Categories())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response)
}

// GetProducts handles GET /menu/products.
//
//	@Summary	List products
//	@Tags		menu
//	@ID			getProducts
//	@Produce	json
//	@Success	200	{array}	catalog.ProductResponse
//	@Router		/menu/products [get]
func (s *Server) GetProducts(c echo.Context) error {
	response, err := catalog.ToProductResponses(s.menu.Products())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response)
}

// GetProductsByCategory handles GET /menu/products/:categoryId.
//
//	@Summary	List products of a category
//	@Tags		menu
//	@ID			getProductsByCategory
//	@Produce	json
//	@Param		categoryId	path		int	true	"Category id"
//	@Success	200			{array}		catalog.ProductResponse
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/menu/products/{categoryId} [get]
func (s *Server) GetProductsByCategory(c echo.Context) error {
	categoryID, err := intParam(c, "categoryId")
	if err != nil {
		return err
	}

	products, err := s.menu.ProductsByCategory(categoryID)
	if err != nil {
		return err
	}

	response, err := catalog.ToProductResponses(products)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response)
}

// GetProduct handles GET /menu/product/:productId.
//
//	@Summary	Get a product
//	@Tags		menu
//	@ID			getProduct
//	@Produce	json
//	@Param		productId	path		int	true	"Product id"
//	@Success	200			{object}	catalog.ProductResponse
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/menu/product/{productId} [get]
func (s *Server) GetProduct(c echo.Context) error {
	productID, err := intParam(c, "productId")
	if err != nil {
		return err
	}

	product, err := s.menu.Product(productID)
	if err != nil {
		return err
	}

	response, err := catalog.ToProductResponse(product)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response)
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}
