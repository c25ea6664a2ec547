package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kashmeeri-backend/internal/events"
	"kashmeeri-backend/internal/models"
	"kashmeeri-backend/internal/store"
)

// Home answers the root path with a service banner.
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":         "Kashmeeri API is running successfully!",
			"version":         "1.0",
			"availableRoutes": []string{"/orders", "/orders/all", "/auth/login"},
		})
	}
}

// CreateOrder accepts a candidate order, validates it and persists it.
// The publisher is optional; a nil publisher skips the order_placed event.
func CreateOrder(orders *store.OrderStore, publisher *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := orders.Create(ctx, &order); err != nil {
			var vErr *store.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "Validation failed in order data.",
					"errors":  vErr.Fields,
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "Failed to place order due to a server error.")
			return
		}

		log.Println("[ORDER] [INFO] order created:", order.ID.Hex())
		if publisher != nil {
			publisher.OrderPlaced(order)
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully!",
			"orderId": order.ID.Hex(),
			"status":  order.Status,
			"summary": order.Summary,
		})
	}
}

// GetOrders lists orders, optionally bounded by startDate/endDate query
// parameters. The end date is inclusive of its full calendar day.
func GetOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/all"
		defer handlePanic(c, route)

		start, err := parseDateParam(c.Query("startDate"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid startDate")
			return
		}
		end, err := parseDateParam(c.Query("endDate"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid endDate")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := orders.ListFiltered(ctx, start, end)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to retrieve orders")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateOrder merges the supplied fields onto an existing order (admin only).
func UpdateOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id"
		defer handlePanic(c, route)

		var patch store.OrderPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := orders.Replace(ctx, c.Param("id"), patch)
		if err != nil {
			respondOrderError(c, route, err, "Internal server error during update")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order updated successfully",
			"order":   updated,
		})
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
	// The storefront's admin panel historically sends newStatus.
	NewStatus string `json:"newStatus"`
}

// UpdateOrderStatus overwrites the status of a single order (admin only).
func UpdateOrderStatus(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /orders/:id/status"
		defer handlePanic(c, route)

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		status := req.Status
		if status == "" {
			status = req.NewStatus
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := orders.UpdateStatus(ctx, c.Param("id"), status)
		if err != nil {
			respondOrderError(c, route, err, "Failed to update order status")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order status updated successfully!",
			"order":   updated,
		})
	}
}

// DeleteOrder removes an order permanently and echoes the removed id.
func DeleteOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /orders/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		orderID, err := orders.Delete(ctx, c.Param("id"))
		if err != nil {
			respondOrderError(c, route, err, "Failed to delete order")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order deleted successfully!",
			"orderId": orderID,
		})
	}
}

// respondOrderError maps store error kinds onto HTTP statuses.
func respondOrderError(c *gin.Context, route string, err error, serverMessage string) {
	var vErr *store.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed in order data.",
			"errors":  vErr.Fields,
		})
	case errors.Is(err, store.ErrInvalidID):
		respondWithError(c, http.StatusBadRequest, route, "invalid order id")
	case errors.Is(err, store.ErrNotFound):
		respondWithError(c, http.StatusNotFound, route, "Order not found.")
	default:
		respondWithError(c, http.StatusInternalServerError, route, serverMessage)
	}
}
