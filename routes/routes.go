package routes

import (
	"net/http"
	"time"

	"tablero/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSlotRoutes registers the guest-facing slot picker endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	{
		api.GET("", hb.GetSlotsHandler)
	}
}

// RegisterAvailabilityRoutes registers the availability check endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/check", hb.CheckAvailabilityHandler)
		api.GET("/latest", hb.LatestAvailabilityHandler)
	}
}

// RegisterTimelineRoutes registers the staff timeline endpoints.
func RegisterTimelineRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timeline")
	{
		api.GET("", hb.GetTimelineHandler)
		api.POST("/refresh", hb.RefreshTimelineHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tablero"})
	})
}

// RegisterRoutes wires up CORS and all endpoint groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSlotRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterTimelineRoutes(r, hb)
}
