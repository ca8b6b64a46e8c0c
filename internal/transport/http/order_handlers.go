package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/pkg/httpx"
)

// getOrder — GET /order/:uid.
func (h *Handler) getOrder(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty uid"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, uid)
	if err != nil {
		h.log.Errorf(ctx, "GetOrder failed uid=%s err=%v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// listOrders — GET /order?customer_id=&limit=&offset=.
func (h *Handler) listOrders(c *gin.Context) {
	customerID := c.Query("customer_id")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id is required"})
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.orders.OrdersByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "OrdersByCustomer failed customer=%s err=%v", customerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
