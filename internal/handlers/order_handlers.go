package handlers

import (
	"errors"
	"net/http"

	"cafemart/internal/common"
	"cafemart/internal/models"
	"cafemart/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// OrderHandlers handles HTTP requests for orders.
type OrderHandlers struct {
	orderService services.OrderServiceInterface
}

func NewOrderHandlers(orderService services.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// PlaceOrder handles POST /api/orders.
func (h *OrderHandlers) PlaceOrder(c echo.Context) error {
	var req models.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendClientError(c, "Missing required order fields")
	}

	confirmation, err := h.orderService.PlaceOrder(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return common.SendClientError(c, err.Error())
		case errors.Is(err, services.ErrTimeout):
			return common.SendTimeoutError(c, "Order processing timed out, please retry")
		default:
			return common.SendServerError(c, "Failed to place order", err)
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":       "Order placed successfully",
		"orderId":       confirmation.OrderID,
		"skippedItems":  confirmation.SkippedItems,
		"computedTotal": confirmation.ComputedTotal,
	})
}

// GetOrder handles GET /api/orders/:id.
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendClientError(c, "Invalid order id")
	}

	order, items, err := h.orderService.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "order")
		}
		return common.SendServerError(c, "Failed to retrieve order", err)
	}
	if items == nil {
		items = []*models.OrderItem{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"order": order,
		"items": items,
	})
}
