package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
	"github.com/vibeventz/ms-go-vendor-admin/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	reconcileWorker bool
	expireWorker    bool
)

var reconcileVendorsCmd = &cobra.Command{
	Use:   "reconcile-vendors",
	Short: "Provision vendors for approved applications missing one",
	Run: func(_ *cobra.Command, _ []string) {
		runCommand(
			"reconcile_vendors",
			reconcileWorker,
			func(cfg *config.Config) time.Duration { return cfg.Jobs.VendorReconcileInterval },
			func(s *jobServices, ctx context.Context) error {
				return s.review.RunVendorReconciliationBatch(ctx)
			},
		)
	},
}

var expireSubscriptionsCmd = &cobra.Command{
	Use:   "expire-subscriptions",
	Short: "Mark lapsed active subscriptions as expired",
	Run: func(_ *cobra.Command, _ []string) {
		runCommand(
			"expire_subscriptions",
			expireWorker,
			func(cfg *config.Config) time.Duration { return cfg.Jobs.ExpirationCheckInterval },
			func(s *jobServices, ctx context.Context) error {
				return s.subscription.RunExpirationBatch(ctx)
			},
		)
	},
}

func init() {
	rootCmd.AddCommand(reconcileVendorsCmd)
	rootCmd.AddCommand(expireSubscriptionsCmd)

	reconcileVendorsCmd.Flags().BoolVar(&reconcileWorker, "worker", false, "Run continuously using configured interval")
	expireSubscriptionsCmd.Flags().BoolVar(&expireWorker, "worker", false, "Run continuously using configured interval")
}

type jobServices struct {
	review       *service.ReviewService
	subscription *service.SubscriptionService
}

func runCommand(
	name string,
	worker bool,
	intervalResolver func(cfg *config.Config) time.Duration,
	fn func(s *jobServices, ctx context.Context) error,
) {
	cfg, services, cleanup := mustCreateJobServices()
	defer cleanup()

	if worker {
		runWorker(name, intervalResolver(cfg), services, fn)
		return
	}

	ctx := context.Background()
	runJob(name, func() error { return fn(services, ctx) })
}

func runWorker(
	name string,
	interval time.Duration,
	services *jobServices,
	fn func(s *jobServices, ctx context.Context) error,
) {
	if interval <= 0 {
		logrus.WithField("job", name).Fatal("invalid worker interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runJob(name, func() error { return fn(services, ctx) })

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case <-quit:
			logrus.WithField("job", name).Info("Worker shutdown requested")
			return
		case <-ticker.C:
			runJob(name, func() error { return fn(services, ctx) })
		}
	}
}

func mustCreateJobServices() (*config.Config, *jobServices, func()) {
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

	applicationRepo := repository.NewApplicationRepository(db)
	provisioningRepo := repository.NewProvisioningRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	services := &jobServices{
		review:       service.NewReviewService(applicationRepo, provisioningRepo, vendorRepo),
		subscription: service.NewSubscriptionService(subscriptionRepo, vendorRepo, invoiceRepo),
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, services, cleanup
}

func runJob(name string, fn func() error) {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Error("job_failed")
		return
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
}
