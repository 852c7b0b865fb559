package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/scentshop/internal/server/http/handlers"
	"github.com/polkiloo/scentshop/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade, logger)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.Verify)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)
	api.GET("/categories", catalogHandler.ListCategories)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/auth/me", authHandler.Me)

	authed.GET("/cart", cartHandler.View)
	authed.POST("/cart/items", cartHandler.AddItem)
	authed.PUT("/cart/items/:productID", cartHandler.UpdateItem)
	authed.DELETE("/cart/items/:productID", cartHandler.RemoveItem)
	authed.DELETE("/cart", cartHandler.Clear)

	authed.POST("/orders", orderHandler.Checkout)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.POST("/orders/:id/cancel", orderHandler.Cancel)

	authed.POST("/orders/:id/payment", paymentHandler.Create)
	authed.POST("/payments/verify", paymentHandler.Verify)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/products", catalogHandler.CreateProduct)
	admin.PUT("/products/:id", catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
	admin.GET("/orders", orderHandler.ListAll)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	return engine
}
