package routes

import (
	"net/http"
	"time"

	"trimly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Chat    *handlers.ChatHandler
	Slots   *handlers.SlotHandler
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
}

// RegisterRoutes wires up every endpoint.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Chat UI and health.
	r.GET("/", handlers.Home)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Trimly"})
	})

	api := r.Group("/api")
	{
		api.POST("/chat", h.Chat.HandleChat)

		api.GET("/slots", h.Slots.ListSlots)
		api.POST("/slots", h.Slots.AddSlot)
		api.DELETE("/slots", h.Slots.RemoveSlot)

		api.GET("/bookings", h.Booking.ListBookings)
		api.GET("/bookings/:id", h.Booking.GetBooking)
		api.POST("/bookings/:id/cancel", h.Booking.CancelBooking)

		api.POST("/pay/klarna", h.Payment.PayWithKlarna)
	}

	// Klarna merchant callback URLs; paths match what order creation
	// registers with the provider.
	r.GET("/checkout", h.Payment.Checkout)
	r.GET("/confirmation", h.Payment.Confirmation)
	r.POST("/klarna/push", h.Payment.Push)
	r.GET("/terms", func(c *gin.Context) {
		c.String(http.StatusOK, "Trimly barbershop — standard terms of service.")
	})
}
