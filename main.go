package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"citixo/config"
	"citixo/cron"
	"citixo/database"
	bookingRepo "citixo/database/repository/booking"
	couponRepo "citixo/database/repository/coupon"
	otpRepo "citixo/database/repository/otp"
	serviceRepo "citixo/database/repository/service"
	userRepo "citixo/database/repository/user"
	"citixo/handlers"
	"citixo/middleware"
	"citixo/routes"
	"citixo/services/auth"
	"citixo/services/booking"
	"citixo/services/coupon"
	"citixo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	coupons := couponRepo.NewMongoCouponRepo()
	otps := otpRepo.NewMongoOTPRepo()
	users := userRepo.NewMongoUserRepo()
	services := serviceRepo.NewMongoServiceRepo()

	// services.
	couponService := &coupon.DefaultCouponService{Repo: coupons}
	authService := &auth.DefaultAuthService{
		Users:    users,
		OTPs:     otps,
		Cooldown: utils.GetOTPCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookings,
		Coupons:   coupons,
		Users:     users,
		Services:  services,
		CouponSvc: couponService,
		Reminders: booking.NewReminderScheduler(),
	}

	// Start the background reminder worker.
	cron.InitReminderWorker()

	handlerBundle := &routes.Handlers{
		Users:   users,
		Auth:    handlers.NewAuthHandler(authService, logger),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Coupon:  handlers.NewCouponHandler(couponService, logger),
		Service: handlers.NewServiceHandler(services, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	logger.Sugar().Info("main: server exited cleanly")
}
