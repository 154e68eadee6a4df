package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/bookypedia/config"
	"github.com/project/bookypedia/db"
	"github.com/project/bookypedia/internal/controller"
	"github.com/project/bookypedia/internal/usecase/library"
	"github.com/project/bookypedia/internal/usecase/repository"
	"github.com/project/bookypedia/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const (
	shutDownSeconds          = 3
	readHeaderTimeoutSeconds = 5
)

// Run serves one interactive session on in/out until Exit, end of input or
// SIGINT/SIGTERM.
func Run(ctx context.Context, l *zap.Logger, cfg *config.Config, in io.Reader, out io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.MigrateOnStart {
		if err := db.SetupPostgres(ctx, cfg.PG.URL, l); err != nil {
			return fmt.Errorf("can not migrate database: %w", err)
		}
	}

	dbPool, err := newPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	otel.SetTracerProvider(tp)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			l.Error("can not shutdown tracer provider", zap.Error(err))
		}
	}()

	if cfg.Observability.MetricsPort != "" {
		go runMetrics(ctx, cfg, l)
	}

	repo := repository.New(logger.Enabled(l, cfg.Log.LogDBRepo), dbPool)
	transactor := repository.NewTransactor(logger.Enabled(l, cfg.Log.LogTransactor), dbPool)
	useCases := library.New(logger.Enabled(l, cfg.Log.LogUseCase), repo.Authors(), repo.Books(), transactor)
	ctrl := controller.New(logger.Enabled(l, cfg.Log.LogController), useCases, useCases, in, out)

	l.Info("session started")

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Run(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
	}

	l.Info("session finished")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.PG.URL)
	if err != nil {
		return nil, fmt.Errorf("can not parse database url: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.PG.MaxConn)

	dbPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("can not create pgxpool: %w", err)
	}

	if err = dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("can not reach database: %w", err)
	}

	return dbPool, nil
}

func runMetrics(ctx context.Context, cfg *config.Config, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              ":" + cfg.Observability.MetricsPort,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeoutSeconds * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics listening at port", zap.String("port", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics listen error", zap.Error(err))
	}
}
