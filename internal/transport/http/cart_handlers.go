package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bricklane/bricks-shop/internal/domain"
)

// getCart — GET /cart/:customer_id.
func (h *Handler) getCart(c *gin.Context) {
	customerID := c.Param("customer_id")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty customer_id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	cart, err := h.cart.GetCart(ctx, customerID)
	if err != nil {
		h.log.Errorf(ctx, "GetCart failed customer=%s err=%v", customerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	c.JSON(http.StatusOK, cart)
}

// addCartItemRequest — тело POST /cart/:customer_id/items.
type addCartItemRequest struct {
	Article string `json:"article" binding:"required"`
	Qty     int    `json:"qty" binding:"required,min=1"`
}

// addCartItem — POST /cart/:customer_id/items.
func (h *Handler) addCartItem(c *gin.Context) {
	customerID := c.Param("customer_id")

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	err := h.cart.AddItem(ctx, customerID, req.Article, req.Qty)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "added"})
	case errors.Is(err, domain.ErrUnknownArticle):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown article"})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "insufficient stock"})
	default:
		h.log.Errorf(ctx, "AddItem failed customer=%s article=%s err=%v", customerID, req.Article, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// removeCartItem — DELETE /cart/:customer_id/items/:article.
func (h *Handler) removeCartItem(c *gin.Context) {
	customerID := c.Param("customer_id")
	article := c.Param("article")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.cart.RemoveItem(ctx, customerID, article); err != nil {
		h.log.Errorf(ctx, "RemoveItem failed customer=%s article=%s err=%v", customerID, article, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// checkout — POST /cart/:customer_id/checkout.
func (h *Handler) checkout(c *gin.Context) {
	customerID := c.Param("customer_id")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.cart.Checkout(ctx, customerID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, order)
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "insufficient stock"})
	default:
		h.log.Errorf(ctx, "Checkout failed customer=%s err=%v", customerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
