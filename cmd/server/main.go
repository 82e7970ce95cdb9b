package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/gradebook/internal/auth"
	"github.com/mmynk/gradebook/internal/config"
	"github.com/mmynk/gradebook/internal/export"
	"github.com/mmynk/gradebook/internal/gradebook"
	"github.com/mmynk/gradebook/internal/metrics"
	"github.com/mmynk/gradebook/internal/middleware"
	"github.com/mmynk/gradebook/internal/service"
	"github.com/mmynk/gradebook/pkg/api"
	"github.com/mmynk/gradebook/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: config.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level)

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	m := metrics.New(prometheus.NewRegistry())

	backend, err := cfg.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer backend.Close()

	book := gradebook.New(metrics.InstrumentStore(backend, m))

	interceptors := []connect.Interceptor{
		middleware.MetricsInterceptor(m),
		middleware.LoggingInterceptor(),
	}

	mux := http.NewServeMux()

	var jwtManager *auth.JWTManager
	if cfg.Auth.Enabled() {
		jwtManager = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager, api.AuthServiceLoginProcedure))

		authSvc := service.NewAuthService(auth.NewPassphraseAuthenticator(cfg.Auth.PassphraseHash), jwtManager, slog.Default())
		authPath, authHandler := api.NewAuthServiceHandler(authSvc, connect.WithInterceptors(interceptors...))
		mux.Handle(authPath, authHandler)
		slog.Info("Auth enabled", "token_ttl", cfg.Auth.TokenTTL)
	} else {
		slog.Warn("Auth disabled: auth.passphrase_hash is not set")
	}

	gradePath, gradeHandler := api.NewGradeServiceHandler(service.NewGradeService(book), connect.WithInterceptors(interceptors...))
	mux.Handle(gradePath, gradeHandler)

	// Export and metrics are plain HTTP; only export needs the owner's token.
	exportHandler := export.Handler(book)
	if jwtManager != nil {
		exportHandler = requireBearer(jwtManager, exportHandler)
	}
	mux.Handle("/export.xlsx", exportHandler)
	mux.Handle("/metrics", m.Handler())

	handler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	return http.ListenAndServe(addr, h2cHandler)
}
