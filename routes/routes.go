package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"omm/handlers"
	"omm/middleware"
)

// HandlerBundle aggregates the handlers the router wires up.
type HandlerBundle struct {
	Booking    *handlers.BookingHandler
	Catalog    *handlers.CatalogHandler
	Assignment *handlers.AssignmentHandler
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Actor-Id", "X-Actor-Name", "X-Actor-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}

// RegisterHealthRoute exposes a liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterBookingRoutes registers all endpoints for booking composition and
// assignment.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookings := r.Group("/api/bookings")
	bookings.Use(middleware.ActorMiddleware())
	{
		bookings.POST("/draft", hb.Booking.CreateDraft)
		bookings.GET("/:id", hb.Booking.GetBooking)
		bookings.PUT("/:id", hb.Booking.SaveBooking)
		bookings.DELETE("/:id", hb.Booking.DeleteBooking)
		bookings.GET("/:id/quote", hb.Booking.GetQuote)

		bookings.POST("/:id/jobs", hb.Booking.AddJob)
		bookings.DELETE("/:id/jobs/:index", hb.Booking.RemoveJob)
		bookings.PATCH("/:id/jobs/:index", hb.Booking.EditJob)

		bookings.POST("/:id/parts", hb.Booking.AddPart)
		bookings.DELETE("/:id/parts/:partId", hb.Booking.RemovePart)

		bookings.POST("/:id/schedules", hb.Booking.AddSchedule)
		bookings.DELETE("/:id/schedules/:index", hb.Booking.RemoveSchedule)
		bookings.PATCH("/:id/schedules/:index", hb.Booking.EditSchedule)

		bookings.PUT("/:id/mechanic", hb.Booking.SetMechanic)
		bookings.POST("/:id/assignment", hb.Assignment.SetAssignment)
	}
}

// RegisterCatalogRoutes registers the part catalogue view endpoint.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	catalogGroup := r.Group("/api/catalog")
	catalogGroup.Use(middleware.ActorMiddleware())
	{
		catalogGroup.GET("/parts", hb.Catalog.ListParts)
	}
}
