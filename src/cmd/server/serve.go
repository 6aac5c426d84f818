package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hortivise/payment-module/src/internal/adapter/gateway/stripegateway"
	"github.com/hortivise/payment-module/src/internal/adapter/http/controller"
	"github.com/hortivise/payment-module/src/internal/adapter/http/middleware"
	"github.com/hortivise/payment-module/src/internal/adapter/http/router"
	"github.com/hortivise/payment-module/src/internal/adapter/repository/implementations"
	"github.com/hortivise/payment-module/src/internal/config"
	"github.com/hortivise/payment-module/src/internal/logger"
	"github.com/hortivise/payment-module/src/internal/usecase/services"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply pending migrations and start the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.StripeAPIKey == "" {
		return errors.New("STRIPE_API_KEY is required to serve")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := implementations.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	gateway := stripegateway.New(cfg.StripeAPIKey)
	userRepo := implementations.NewUserRepository(db)
	tokenRepo := implementations.NewAccessTokenRepository(db)

	authService := services.NewAuthService(userRepo, tokenRepo, cfg.AccessTokenTTL)
	paymentService := services.NewPaymentService(gateway, services.PaymentSettings{
		SuccessURL:           cfg.CheckoutSuccessURL,
		CancelURL:            cfg.CheckoutCancelURL,
		PlatformFeePercent:   cfg.PlatformFeePercent,
		PartialRefundPercent: cfg.PartialRefundPercent,
	})
	consultantService := services.NewConsultantService(gateway, services.ConsultantSettings{
		DefaultCurrency: cfg.DefaultCurrency,
		Country:         cfg.DefaultCountry,
		RefreshURL:      cfg.OnboardingRefreshURL,
		ReturnURL:       cfg.OnboardingReturnURL,
	})

	handler := router.New(
		middleware.BearerAuth(authService),
		controller.NewAuthController(authService),
		controller.NewUserController(services.NewUserService(userRepo)),
		controller.NewProductController(services.NewProductService(gateway, cfg.DefaultCurrency)),
		controller.NewConsultantController(consultantService),
		controller.NewPaymentController(paymentService),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", logger.Fields{
			"addr": server.Addr,
		})
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("http server shutting down", logger.Fields{
		"timeout": cfg.ShutdownTimeout.String(),
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
