package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"fbs-backend/internal/models"
	"fbs-backend/internal/services"
)

type OrderHandler struct {
	fulfillment *services.FulfillmentService
}

func NewOrderHandler(fulfillment *services.FulfillmentService) *OrderHandler {
	return &OrderHandler{fulfillment: fulfillment}
}

// PlaceOrder godoc
// @Summary     Place a fulfillment order
// @Description Converts the resource behind the given URL via the conversion provider, re-hosts the result on the file host and returns a direct-download link. Debits 5 credits from the user on success.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.OrderRequest true "Order details"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.FailureResponse
// @Router      /api/order [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	placed, err := h.fulfillment.PlaceOrder(req.UserID, req.URL, req.Source)
	if err != nil {
		// The wrapped error keeps the failing step; only the coarse
		// message leaves the process.
		log.Printf("place order for user %s: %v", req.UserID, err)

		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "User not found"})
		case errors.Is(err, services.ErrProviderTimeout):
			c.JSON(http.StatusInternalServerError, models.FailureResponse{Status: false, Error: "File not ready in time"})
		default:
			c.JSON(http.StatusInternalServerError, models.FailureResponse{Status: false, Error: "Order failed"})
		}
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{
		Status:  true,
		OrderID: placed.OrderID,
		Link:    placed.Link,
	})
}
