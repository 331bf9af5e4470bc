package routes

import (
	"net/http"
	"time"

	userRepo "citixo/database/repository/user"
	"citixo/handlers"
	"citixo/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Users   userRepo.UserRepository
	Auth    *handlers.AuthHandler
	Booking *handlers.BookingHandler
	Coupon  *handlers.CouponHandler
	Service *handlers.ServiceHandler
}

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, h)
	RegisterServiceRoutes(r, h)
	RegisterBookingRoutes(r, h)
	RegisterCouponRoutes(r, h)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Citixo Services API"})
	})
}

// RegisterAuthRoutes registers the OTP-gated registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/auth")
	{
		api.POST("/send-otp", h.Auth.SendOTP)
		api.POST("/verify-otp", h.Auth.VerifyOTP)
		api.POST("/check-email", h.Auth.CheckEmail)
		api.POST("/signup", h.Auth.Signup)
		api.POST("/login", h.Auth.Login)
	}
}

// RegisterServiceRoutes registers catalog endpoints; mutations are admin-only.
func RegisterServiceRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/services")
	{
		api.GET("", h.Service.ListServices)
		api.GET("/:id", h.Service.GetService)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(h.Users), middleware.RequireAdmin())
		admin.POST("", h.Service.CreateService)
		admin.PUT("/:id", h.Service.UpdateService)
		admin.DELETE("/:id", h.Service.DeleteService)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(h.Users))
		api.GET("", h.Booking.ListBookings)
		api.POST("", h.Booking.CreateBooking)
		api.GET("/:id", h.Booking.GetBooking)
		api.POST("/payment-intent", h.Booking.GetPaymentIntent)
		api.PUT("/:id/user-edit", h.Booking.UserEdit)
		api.PUT("/:id/cancel", h.Booking.CancelBooking)
		api.POST("/:id/review", h.Booking.AttachReview)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.PUT("", h.Booking.AdminUpdate)
		admin.PUT("/:id/status", h.Booking.UpdateStatus)
	}
}

// RegisterCouponRoutes registers coupon preview and admin CRUD endpoints.
func RegisterCouponRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/coupons")
	{
		validate := api.Group("")
		validate.Use(middleware.AuthMiddleware(h.Users))
		validate.POST("/validate", h.Coupon.ValidateCoupon)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(h.Users), middleware.RequireAdmin())
		admin.GET("", h.Coupon.GetCoupon)
		admin.POST("", h.Coupon.CreateCoupon)
		admin.PUT("/:code", h.Coupon.UpdateCoupon)
		admin.DELETE("/:code", h.Coupon.DeleteCoupon)
	}
}
