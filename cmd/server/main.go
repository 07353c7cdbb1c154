package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "gstbill/docs"
	"gstbill/internal/cache/noop"
	rediscache "gstbill/internal/cache/redis"
	"gstbill/internal/config"
	"gstbill/internal/domain"
	noopemail "gstbill/internal/email/noop"
	sesemail "gstbill/internal/email/ses"
	"gstbill/internal/handler"
	"gstbill/internal/logger"
	"gstbill/internal/port"
	"gstbill/internal/repository/postgres"
	"gstbill/internal/router"
	"gstbill/internal/service"
	s3storage "gstbill/internal/storage/s3"
	"gstbill/internal/totals"
)

// @title           GST Bill API
// @version         1.0
// @description     Invoicing backend for small businesses: customers, GST invoices, payments and templates.

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	businessRepo := postgres.NewBusinessRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	predefinedRepo := postgres.NewPredefinedTemplateRepo(db)
	settingsRepo := postgres.NewTemplateSettingsRepo(db)
	templateRepo := postgres.NewInvoiceTemplateRepo(db)
	assetRepo := postgres.NewAssetRepo(db)
	uow := postgres.NewUnitOfWork(db)

	// Initialize adapters
	assetStore, err := s3storage.NewAssetStore(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	cache, closeCache, err := newCache(ctx, cfg, zlog)
	if err != nil {
		return err
	}
	defer closeCache()

	emailSender, err := newEmailSender(ctx, cfg, zlog)
	if err != nil {
		return err
	}

	engine := totals.NewEngine(totals.Config{
		OverallDiscountStage:  domain.DiscountStage(cfg.Totals.OverallDiscountStage),
		ClampAbsoluteDiscount: cfg.Totals.ClampAbsoluteDiscount,
	})

	// Initialize services
	businessSvc := service.NewBusinessService(businessRepo, zlog)
	customerSvc := service.NewCustomerService(customerRepo)
	templateSvc := service.NewTemplateService(predefinedRepo, settingsRepo, templateRepo, cache, cfg.Redis.TTL, zlog)
	assetSvc := service.NewAssetService(assetRepo, assetStore, &cfg.S3, zlog)
	invoiceSvc := service.NewInvoiceService(
		invoiceRepo, customerRepo, businessRepo, uow,
		templateSvc, assetSvc, emailSender, engine,
		service.InvoiceOptions{
			NumberPrefix:        cfg.Invoice.NumberPrefix,
			DefaultDiscountMode: domain.DiscountMode(cfg.Invoice.DefaultDiscountMode),
			RoundingPlaces:      cfg.Totals.RoundingPlaces,
			FrontendURL:         cfg.Email.FrontendURL,
		},
		zlog,
	)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo, uow, zlog)

	// Initialize handlers
	errs := handler.NewErrorHandler(zlog)
	r := router.Setup(cfg, zlog,
		handler.NewBusinessHandler(businessSvc, errs),
		handler.NewCustomerHandler(customerSvc, errs),
		handler.NewInvoiceHandler(invoiceSvc, errs),
		handler.NewPaymentHandler(paymentSvc, errs),
		handler.NewTemplateHandler(templateSvc, errs),
		handler.NewAssetHandler(assetSvc, errs),
		handler.NewHealthHandler(db, cache),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		zlog.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment),
			zap.String("overall_discount_stage", cfg.Totals.OverallDiscountStage),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	zlog.Info("server exited")
	return nil
}

// newCache connects to Redis when an address is configured and falls back to
// the no-op cache otherwise.
func newCache(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (port.Cache, func(), error) {
	if cfg.Redis.Addr == "" {
		zlog.Info("redis not configured, template cache disabled")
		return noop.NewCache(), func() {}, nil
	}
	client, err := rediscache.NewClient(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rediscache.NewCache(client), func() { _ = client.Close() }, nil
}

func newEmailSender(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (port.EmailSender, error) {
	switch cfg.Email.Provider {
	case "ses":
		sender, err := sesemail.NewSESSender(ctx, cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SES sender: %w", err)
		}
		return sender, nil
	default:
		zlog.Info("email provider is noop, invoice emails are logged only")
		return noopemail.NewNoopSender(zlog), nil
	}
}
