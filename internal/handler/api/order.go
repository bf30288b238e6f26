package api

import (
	"errors"
	"net/http"

	resdto "legalbook/internal/handler/dto/response"
	"legalbook/internal/handler/middleware"
	"legalbook/internal/usecase/commands"
	"legalbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	checkout commands.CheckoutCommands
	queries  queries.OrderQueries
}

func NewOrderHandler(checkout commands.CheckoutCommands, qs queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		queries:  qs,
	}
}

// @Summary Checkout
// @Description Freeze the cart into a pending order and create a payment intent
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.checkout.Checkout(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrInvalidTotal):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Order total must be positive",
			})
		case errors.Is(err, commands.ErrCategoryNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "A cart item references a category that no longer exists",
			})
		case errors.Is(err, commands.ErrUpstreamPayment):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider is unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary Get order
// @Description Get an order by ID; only visible to its owner
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List all orders for the current user, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OrderResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromOrderView(v)
	}
	c.JSON(http.StatusOK, response)
}
