package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/vibeventz/ms-go-vendor-admin/app/auth"
	"github.com/vibeventz/ms-go-vendor-admin/app/controller"
	"github.com/vibeventz/ms-go-vendor-admin/app/middleware"
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
	"github.com/vibeventz/ms-go-vendor-admin/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP (Echo) server for the vendor admin service.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := openDatabase(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	applicationRepo := repository.NewApplicationRepository(db)
	provisioningRepo := repository.NewProvisioningRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	userRepo := repository.NewUserRepository(db)

	reviewService := service.NewReviewService(applicationRepo, provisioningRepo, vendorRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, vendorRepo, invoiceRepo)
	vendorService := service.NewVendorService(vendorRepo)
	userService := service.NewUserService(userRepo)
	dashboardService := service.NewDashboardService(applicationRepo, vendorRepo, userRepo)

	tokenVerifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret)
	authService := auth.NewService(tokenVerifier, userRepo)

	applicationController := controller.NewApplicationController(reviewService)
	subscriptionController := controller.NewSubscriptionController(subscriptionService)
	vendorController := controller.NewVendorController(vendorService)
	userController := controller.NewUserController(userService)
	dashboardController := controller.NewDashboardController(dashboardService)

	e := setupHTTPServer(
		authService,
		applicationController,
		subscriptionController,
		vendorController,
		userController,
		dashboardController,
	)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func setupHTTPServer(
	authService *auth.Service,
	applicationController *controller.ApplicationController,
	subscriptionController *controller.SubscriptionController,
	vendorController *controller.VendorController,
	userController *controller.UserController,
	dashboardController *controller.DashboardController,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))

	e.GET("/health", controller.Health)

	admin := e.Group("", middleware.RequireAdmin(authService))

	dashboard := admin.Group("/dashboard")
	dashboard.GET("/stats", dashboardController.Stats)
	dashboard.GET("/analytics", dashboardController.Analytics)

	applications := admin.Group("/applications")
	applications.GET("", applicationController.ListApplications)
	applications.GET("/:id", applicationController.GetApplication)
	applications.POST("/:id/review", applicationController.ReviewApplication)

	vendors := admin.Group("/vendors")
	vendors.GET("", vendorController.ListVendors)
	vendors.PATCH("/:id/status", vendorController.UpdateVendorStatus)

	subscriptions := admin.Group("/subscriptions")
	subscriptions.GET("", subscriptionController.ListVendorSubscriptions)
	subscriptions.PATCH("/:id", subscriptionController.UpdateVendorSubscription)
	subscriptions.POST("/:id/payments", subscriptionController.RecordPayment)
	subscriptions.GET("/:id/invoices", subscriptionController.ListVendorInvoices)

	users := admin.Group("/users")
	users.GET("", userController.ListUsers)
	users.PATCH("/:id/role", userController.UpdateUserRole)

	return e
}
