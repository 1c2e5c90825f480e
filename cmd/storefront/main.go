package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/candleworks/storefront/internal/client"
	"github.com/candleworks/storefront/internal/config"
	"github.com/candleworks/storefront/internal/health"
	"github.com/candleworks/storefront/internal/metrics"
	service "github.com/candleworks/storefront/internal/services"
	"github.com/candleworks/storefront/internal/telemetry"
)

func main() {

	// Logger setup
	logFile, err := os.OpenFile("storefront.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Error("❌ Cannot open log file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer logFile.Close()

	// Logs go to a file so they do not fight the terminal UI for stdout.
	logger := slog.New(slog.NewJSONHandler(logFile, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), "candleworks-storefront", cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		slog.Error("❌ Error configuring tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}()

	// Backend API setup
	api := client.New(cfg.Backend)

	authClient := client.NewAuthClient(api)
	productClient := client.NewProductClient(api)
	storeClient := client.NewStoreClient(api)
	adminClient := client.NewAdminClient(api)
	deliveryClient := client.NewDeliveryClient(api)
	invoiceClient := client.NewInvoiceClient(api)
	paymentMethodClient := client.NewPaymentMethodClient(api)
	paymentClient := client.NewPaymentClient(api)
	orderClient := client.NewOrderClient(api)
	manufacturerClient := client.NewManufacturerClient(api)

	cart := service.NewCart()
	session := service.NewSession(cart, storeClient)
	accountService := service.NewAccountService(authClient, storeClient, adminClient, session)
	catalogService := service.NewCatalogService(productClient, manufacturerClient)
	checkoutService := service.NewCheckoutService(deliveryClient, invoiceClient, paymentMethodClient, paymentClient, orderClient)
	ordersService := service.NewOrdersService(orderClient)

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Backend.BaseURL),
		slog.String("version", "1.0.0"),
	)

	// Ops listener: /metrics and /healthz
	healthHandler, err := health.NewHealthHandler(api)
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	opsMux := http.NewServeMux()
	opsMux.Handle("GET /metrics", metrics.Handler())
	opsMux.Handle("GET /healthz", healthHandler.Handler())

	opsServer := http.Server{
		Addr:    cfg.Ops.Addr,
		Handler: opsMux,
	}

	go func() {
		if err := opsServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start ops listener", slog.Any("error", err.Error()))
		}
	}()

	// Terminal UI
	app := newApp(appDeps{
		cart:     cart,
		session:  session,
		account:  accountService,
		catalog:  catalogService,
		checkout: checkoutService,
		orders:   ordersService,
	})

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		slog.Error("❌ Terminal UI exited with error", slog.String("error", err.Error()))
	}

	// Graceful shutdown of the ops listener once the UI exits
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Ops listener shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Ops listener shut down gracefully")
	}

}
