package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	// Recipe list served by the original demo server
	router.GET("/api/recipes", handler.ListRecipes)

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", handler.Login)
			auth.POST("/register", handler.Register)
			auth.GET("/me", RequireAuth(handler.auth), handler.Me)
			auth.POST("/logout", RequireAuth(handler.auth), handler.Logout)
		}

		// Browsing works for guests
		public := v1.Group("")
		public.Use(OptionalAuth(handler.auth))
		{
			public.GET("/categories", handler.ListCategories)
			public.GET("/categories/:id/products", handler.CategoryProducts)
			public.GET("/products", handler.SearchProducts)
			public.GET("/products/:id", handler.GetProduct)
			public.GET("/resolve", handler.ResolveIngredient)

			public.GET("/recipes", handler.ListRecipes)
			public.GET("/recipes/:id", handler.GetRecipe)
			public.POST("/recipes/:id/review", handler.ReviewRecipe)

			public.POST("/analysis", handler.AnalyzeImage)

			review := public.Group("/review")
			{
				review.GET("", handler.ListReview)
				review.PUT("/:itemId", handler.UpdateReviewItem)
				review.DELETE("/:itemId", handler.DeleteReviewItem)
				review.POST("/:itemId/toggle", handler.ToggleReviewItem)
				review.POST("/:itemId/quantity", handler.ChangeReviewQuantity)
				review.POST("/:itemId/replace", handler.ReplaceReviewProduct)
				review.GET("/:itemId/alternatives", handler.ReviewAlternatives)
			}

			public.GET("/navigation", handler.GetNavigation)
			public.POST("/navigation", handler.Navigate)
			public.POST("/navigation/reset", handler.ResetNavigation)
		}

		// Everything that touches the cart or account needs a signed-in user
		private := v1.Group("")
		private.Use(RequireAuth(handler.auth))
		{
			private.POST("/recipes/:id/favorite", handler.ToggleFavorite)
			private.POST("/navigation/continue-shopping", handler.ContinueShopping)

			cart := private.Group("/cart")
			{
				cart.GET("", handler.GetCart)
				cart.POST("/items", handler.AddToCart)
				cart.PATCH("/items/:productId", handler.ChangeCartQuantity)
				cart.DELETE("/items/:productId", handler.RemoveFromCart)
				cart.POST("/from-review", handler.ContinueReview)
			}

			private.POST("/checkout", handler.Checkout)

			private.GET("/orders", handler.ListOrders)
			private.POST("/orders/:id/reorder", handler.Reorder)

			profile := private.Group("/profile")
			{
				profile.GET("", handler.GetProfile)
				profile.POST("/addresses", handler.AddAddress)
				profile.PUT("/addresses/:id/default", handler.SetDefaultAddress)
				profile.DELETE("/addresses/:id", handler.DeleteAddress)
				profile.POST("/cards", handler.AddCard)
				profile.PUT("/cards/:id/default", handler.SetDefaultCard)
				profile.DELETE("/cards/:id", handler.DeleteCard)
			}

			admin := private.Group("/admin")
			admin.Use(RequireAdmin())
			{
				admin.GET("/stats", handler.AdminStats)
				admin.GET("/products", handler.AdminListProducts)
				admin.POST("/products", handler.AdminCreateProduct)
				admin.PUT("/products/:id", handler.AdminUpdateProduct)
				admin.DELETE("/products/:id", handler.AdminDeleteProduct)
				admin.GET("/recipes", handler.ListRecipes)
				admin.POST("/recipes", handler.AdminCreateRecipe)
				admin.PUT("/recipes/:id", handler.AdminUpdateRecipe)
				admin.DELETE("/recipes/:id", handler.AdminDeleteRecipe)
				admin.GET("/orders", handler.AdminListOrders)
				admin.PATCH("/orders/:id/status", handler.AdminUpdateOrderStatus)
			}
		}
	}

	return router
}
