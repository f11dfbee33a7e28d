package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/yourorg/productsvc/internal/api"
	"github.com/yourorg/productsvc/internal/database"
	"github.com/yourorg/productsvc/internal/repository"
	"github.com/yourorg/productsvc/internal/service"
	"github.com/yourorg/productsvc/internal/tracing"
)

const serviceName = "productsvc"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to run the server on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind the server to")
	serveCmd.Flags().Bool("auto-migrate", false, "Apply pending migrations before serving")
	_ = viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("HOST", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("AUTO_MIGRATE", serveCmd.Flags().Lookup("auto-migrate"))
}

func runServe(_ *cobra.Command, _ []string) error {
	canonlog.SetupGlobalLogger(viper.GetString("LOG_LEVEL"), viper.GetString("LOG_FORMAT"))

	addr := fmt.Sprintf("%s:%d", viper.GetString("HOST"), viper.GetInt("PORT"))

	databaseURL := viper.GetString("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if viper.GetBool("AUTO_MIGRATE") {
		if err := runMigrations(migrateUp); err != nil {
			return err
		}
	}

	ctx := context.Background()

	poolConfig := database.PoolConfig{
		MinConns: viper.GetInt("DB_MIN_CONNS"),
		MaxConns: viper.GetInt("DB_MAX_CONNS"),
	}
	db, err := database.Connect(ctx, databaseURL, poolConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Shutdown(context.Background()) }()

	if viper.GetBool("TRACING_ENABLED") {
		tp, err := tracing.InitTracer(tracing.Config{
			ServiceName:    serviceName,
			ServiceVersion: Version,
			JaegerEndpoint: viper.GetString("JAEGER_ENDPOINT"),
		})
		if err != nil {
			return err
		}
		defer func() { _ = tracing.Shutdown(context.Background(), tp) }()
	}

	// Repositories
	productRepo := repository.NewProductRepository(db)

	// Services
	productSvc := service.NewProductService(productRepo)

	// Handler
	handler := api.NewHandler(productSvc, productRepo)

	routeConfig := api.RouteConfig{
		APIPrefix:      viper.GetString("API_PREFIX"),
		APIVersion:     viper.GetString("API_VERSION"),
		ReadRPS:        viper.GetInt("RATE_LIMIT_READ_RPS"),
		WriteRPS:       viper.GetInt("RATE_LIMIT_WRITE_RPS"),
		MaxBodyBytes:   viper.GetInt64("MAX_REQUEST_BODY_BYTES"),
		RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		AllowedOrigins: api.ParseAllowedOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		Registry:       prometheus.NewRegistry(),
	}

	var routes http.Handler = handler.RoutesWithConfig(routeConfig)
	if viper.GetBool("TRACING_ENABLED") {
		routes = otelhttp.NewHandler(routes, serviceName)
	}

	srv := &http.Server{
		Addr:           addr,
		Handler:        routes,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   routeConfig.RequestTimeout + 5*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1048576,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", addr, "prefix", routeConfig.APIPrefix, "api_version", routeConfig.APIVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
