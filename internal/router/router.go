package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/config"
	"github.com/ikkim/winecraft-backend/internal/app/controller"
	"github.com/ikkim/winecraft-backend/internal/middleware"
)

type Router struct {
	sessionController      *controller.SessionController
	catalogController      *controller.CatalogController
	configuratorController *controller.ConfiguratorController
	cartController         *controller.CartController
	favoritesController    *controller.FavoritesController
	checkoutController     *controller.CheckoutController
	sessionMiddleware      *middleware.SessionMiddleware
	config                 *config.Config
}

func NewRouter(
	sessionController *controller.SessionController,
	catalogController *controller.CatalogController,
	configuratorController *controller.ConfiguratorController,
	cartController *controller.CartController,
	favoritesController *controller.FavoritesController,
	checkoutController *controller.CheckoutController,
	sessionMiddleware *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		sessionController:      sessionController,
		catalogController:      catalogController,
		configuratorController: configuratorController,
		cartController:         cartController,
		favoritesController:    favoritesController,
		checkoutController:     checkoutController,
		sessionMiddleware:      sessionMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(corsConfig(r.config.CORS.AllowedOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Winecraft API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/sessions", r.sessionController.CreateSession)

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/ingredients", r.catalogController.GetIngredients)
			catalog.GET("/options", r.catalogController.GetOptions)
			catalog.GET("/wines", r.catalogController.GetWines)
			catalog.GET("/wines/:id", r.catalogController.GetWine)
		}

		v1.POST("/donations", r.checkoutController.Donate)

		checkout := v1.Group("/checkout")
		{
			checkout.POST("/summary", r.checkoutController.Summarize)
			checkout.GET("/confirmations/:reference", r.checkoutController.GetConfirmation)
			checkout.GET("/confirmations/:reference/receipt", r.checkoutController.DownloadReceipt)
			checkout.GET("/:token", r.checkoutController.GetSummary)
			checkout.POST("/:token/confirm", r.checkoutController.Confirm)
		}

		shopper := v1.Group("")
		shopper.Use(r.sessionMiddleware.RequireSession())
		{
			shopper.DELETE("/sessions/current", r.sessionController.EndSession)

			configurator := shopper.Group("/configurator")
			{
				configurator.GET("", r.configuratorController.GetConfiguration)
				configurator.DELETE("", r.configuratorController.Reset)
				configurator.POST("/toggle", r.configuratorController.ToggleIngredient)
				configurator.PUT("/flavor", r.configuratorController.SetFlavor)
				configurator.PUT("/bottle", r.configuratorController.SetBottle)
				configurator.PUT("/accessory", r.configuratorController.SetAccessory)
				configurator.PUT("/alcohol", r.configuratorController.SetAlcohol)
				configurator.PUT("/quantity", r.configuratorController.SetQuantity)
				configurator.PUT("/name", r.configuratorController.SetName)
				configurator.POST("/cart", r.configuratorController.AddToCart)
				configurator.POST("/checkout", r.configuratorController.ProceedToCheckout)
			}

			cart := shopper.Group("/cart")
			{
				cart.GET("", r.cartController.GetCart)
				cart.DELETE("", r.cartController.ClearCart)
				cart.POST("/wines/:id", r.cartController.AddWine)
				cart.POST("/checkout", r.cartController.Checkout)
				cart.PUT("/:lineId", r.cartController.UpdateCartItem)
				cart.DELETE("/:lineId", r.cartController.RemoveFromCart)
			}

			favorites := shopper.Group("/favorites")
			{
				favorites.GET("", r.favoritesController.GetFavorites)
				favorites.POST("/toggle", r.favoritesController.ToggleFavorite)
				favorites.GET("/:ref", r.favoritesController.CheckFavorite)
			}
		}
	}

	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionIDHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowOriginFunc = func(string) bool { return true }
			return cfg
		}
	}
	cfg.AllowOrigins = allowedOrigins
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:5173"}
	}
	return cfg
}
