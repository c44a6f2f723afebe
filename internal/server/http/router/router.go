package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/webshop/internal/server/http/handlers"
	"github.com/polkiloo/webshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.WebShopFacade, logger *slog.Logger, metrics *middleware.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Handler())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	clothesItemHandler := handlers.NewClothesItemHandler(facade)
	clothesTypeHandler := handlers.NewClothesTypeHandler(facade)

	api := engine.Group("/api")

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	customers := api.Group("/customers")
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)
	customers.POST("/sync", customerHandler.Sync)

	clothesItems := api.Group("/clothes-items")
	clothesItems.GET("", clothesItemHandler.List)
	clothesItems.GET("/:id", clothesItemHandler.Get)
	clothesItems.POST("", clothesItemHandler.Create)
	clothesItems.PUT("/:id", clothesItemHandler.Update)
	clothesItems.DELETE("/:id", clothesItemHandler.Delete)

	clothesTypes := api.Group("/clothes-types")
	clothesTypes.GET("", clothesTypeHandler.List)
	clothesTypes.GET("/:id", clothesTypeHandler.Get)
	clothesTypes.POST("", clothesTypeHandler.Create)
	clothesTypes.PUT("/:id", clothesTypeHandler.Update)
	clothesTypes.DELETE("/:id", clothesTypeHandler.Delete)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return engine
}
