package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"workdate/handlers"
	"workdate/utils"
)

// RegisterBusinessDateRoutes registers the calculation endpoints.
func RegisterBusinessDateRoutes(r *gin.Engine, h *handlers.BusinessDateHandler) {
	api := r.Group("/api/business-dates")
	{
		api.GET("/calculate", h.Calculate)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.BusinessDateHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterBusinessDateRoutes(r, h)
	RegisterHealthRoute(r)
}
