package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/bricklane/bricks-shop/internal/ports"
	"github.com/bricklane/bricks-shop/pkg/httpx"
)

// Handler — HTTP-обработчики поверх прикладных сервисов.
type Handler struct {
	catalog ports.CatalogService
	cart    ports.CartService
	orders  ports.OrderReadService
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — DI-конструктор; timeout ограничивает обработку одного запроса.
func NewHandler(
	catalog ports.CatalogService,
	cart ports.CartService,
	orders ports.OrderReadService,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{catalog: catalog, cart: cart, orders: orders, log: log, timeout: timeout}
}

// requestContext — контекст запроса с таймаутом обработчика (если задан).
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// NewRouter — сборка маршрутов: три группы (/bricks, /cart, /order)
// плюс служебные /ping и /metrics. Каждая группа диспетчеризует только
// свои пути; всё остальное — NoRoute (404) / NoMethod (405).
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	bricks := r.Group("/bricks")
	{
		bricks.GET("", h.listBricks)
		bricks.GET("/:article", h.getBrick)
		bricks.POST("", h.saveBrick)
	}

	cart := r.Group("/cart")
	{
		cart.GET("/:customer_id", h.getCart)
		cart.POST("/:customer_id/items", h.addCartItem)
		cart.DELETE("/:customer_id/items/:article", h.removeCartItem)
		cart.POST("/:customer_id/checkout", h.checkout)
	}

	order := r.Group("/order")
	{
		order.GET("", h.listOrders)
		order.GET("/:uid", h.getOrder)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}
