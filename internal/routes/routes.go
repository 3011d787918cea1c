package routes

import (
	"net/http"

	"github.com/01moynul/taptosell-console/internal/handlers"
	"github.com/01moynul/taptosell-console/internal/middleware"
	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware tells the browser that the dashboard UI at allowedOrigin may call us.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Strictly allow ONLY the configured frontend
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)

		// 2. Allow standard security credentials
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		// 3. Allow the headers we actually use
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID, X-Session-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		// 4. Allow the HTTP methods we use in our API
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// 5. Handle the "Preflight" OPTIONS request
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, allowedOrigin string) *gin.Engine {
	router := gin.Default()

	// --- APPLY THE CORS GUARD ---
	router.Use(CORSMiddleware(allowedOrigin))

	requireAuth := middleware.AuthMiddleware(h.Tokens, h.MaintenanceMode)

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/auth/login", h.Login)

		// --- Storefront Routes (Public) ---
		storefront := v1.Group("/storefront")
		{
			storefront.GET("/navigation", h.GetNavigation)
			storefront.GET("/search", h.SearchStorefront)
			storefront.GET("/models/:id", h.GetModelProfile)
		}

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(requireAuth)
		{
			auth.GET("/notifications", h.GetNotifications)

			// Content creation (stories & reels)
			content := auth.Group("/stories")
			content.Use(middleware.RoleMiddleware(models.RoleAdmin, models.RoleMerchant, models.RoleModel, models.RoleInfluencer))
			{
				content.POST("", h.CreateStory)
				content.POST("/caption", h.SuggestCaption)
				content.DELETE("/:id", h.DeleteStory)
			}

			// Seller dashboards
			dashboard := auth.Group("/dashboard")
			dashboard.Use(middleware.RoleMiddleware(models.RoleMerchant, models.RoleModel, models.RoleInfluencer, models.RoleSupplier))
			{
				dashboard.GET("/payouts", h.GetMyPayouts)
				dashboard.GET("/products", h.GetMyProducts)
			}
		}

		// --- Admin Routes ---
		admin := v1.Group("/admin")
		admin.Use(requireAuth)
		admin.Use(middleware.RoleMiddleware(models.RoleAdmin))
		{
			admin.GET("/plans", h.GetPlans)
			admin.POST("/plans", h.CreatePlan)
			admin.PUT("/plans/:id", h.UpdatePlan)
			admin.DELETE("/plans/:id", h.DeletePlan)

			admin.GET("/payouts", h.GetPayouts)
			admin.PATCH("/payouts/:id", h.DecidePayout)
			admin.GET("/payouts/:id/invoice", h.GetPayoutInvoice)

			admin.GET("/products", h.GetProducts)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.PATCH("/products/:id/status", h.UpdateProductStatus)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.GET("/users", h.GetUsers)
			admin.PUT("/users/:id", h.UpdateUser)

			admin.GET("/shipping-companies", h.GetShippingCompanies)
			admin.POST("/shipping-companies", h.CreateShippingCompany)
			admin.PUT("/shipping-companies/:id", h.UpdateShippingCompany)
			admin.DELETE("/shipping-companies/:id", h.DeleteShippingCompany)

			admin.GET("/stories", h.GetStories)
			admin.DELETE("/stories/:id", h.DeleteStory)

			admin.GET("/settings", h.GetSettings)
			admin.PUT("/settings", h.UpdateSettings)

			admin.GET("/analytics", h.GetAnalytics)
			admin.GET("/audit", h.GetAuditLog)
		}
	}

	return router
}
