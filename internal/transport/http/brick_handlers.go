package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bricklane/bricks-shop/internal/domain"
	"github.com/bricklane/bricks-shop/pkg/httpx"
)

// getBrick — GET /bricks/:article.
func (h *Handler) getBrick(c *gin.Context) {
	article := c.Param("article")
	if article == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty article"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	brick, err := h.catalog.GetBrick(ctx, article)
	if err != nil {
		h.log.Errorf(ctx, "GetBrick failed article=%s err=%v", article, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if brick == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "brick not found"})
		return
	}
	c.JSON(http.StatusOK, brick)
}

// listBricks — GET /bricks?limit=&offset=.
func (h *Handler) listBricks(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	bricks, err := h.catalog.ListBricks(ctx, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "ListBricks failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if bricks == nil {
		bricks = []*domain.Brick{}
	}
	c.JSON(http.StatusOK, bricks)
}

// saveBrickRequest — тело POST /bricks.
type saveBrickRequest struct {
	Article    string `json:"article" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Color      string `json:"color"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
	Stock      int    `json:"stock" binding:"min=0"`
}

// saveBrick — POST /bricks, идемпотентный upsert позиции каталога.
func (h *Handler) saveBrick(c *gin.Context) {
	var req saveBrickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	brick := &domain.Brick{
		Article:    req.Article,
		Name:       req.Name,
		Color:      req.Color,
		Category:   req.Category,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := h.catalog.SaveBrick(ctx, brick); err != nil {
		h.log.Errorf(ctx, "SaveBrick failed article=%s err=%v", req.Article, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, brick)
}
