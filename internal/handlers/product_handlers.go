package handlers

import (
	"net/http"

	"cafemart/internal/common"
	"cafemart/internal/models"
	"cafemart/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandlers handles HTTP requests for the product catalog.
type ProductHandlers struct {
	catalogService services.CatalogService
}

func NewProductHandlers(catalogService services.CatalogService) *ProductHandlers {
	return &ProductHandlers{catalogService: catalogService}
}

// ListProducts handles GET /api/products.
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to fetch products", err)
	}
	if products == nil {
		products = []*models.Product{}
	}
	return c.JSON(http.StatusOK, products)
}
