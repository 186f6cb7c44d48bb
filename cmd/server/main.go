// Command server exposes the Klingon analyzer and dictionary as a JSON
// REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>[&kind=noun|verb|both]
//	GET  /api/lookup?query=<word or name:pos>
//	POST /api/lookup/text   body: {"text":"..."}
//	GET  /api/decode?name=<entry name>&pos=<part of speech>
//	GET  /api/healthz
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/klingon-assistant/klingon"
	"github.com/klingon-assistant/klingon/internal/config"
	"github.com/klingon-assistant/klingon/internal/logging"
	"github.com/klingon-assistant/klingon/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	cfgFile := flags.String("config", "", "config file (default boqwi.yaml if present)")
	flags.String("addr", config.DefaultAddr, "listen address")
	flags.String("database", "", "SQLite dictionary database (default in-memory)")
	flags.String("data", "", "YAML dictionary file to load at startup")
	flags.String("log-level", config.DefaultLogLevel, "log level")
	flags.String("log-format", config.DefaultLogFormat, "log format: json or console")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgFile, flags)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("loading dictionary",
		zap.String("database", cfg.Database),
		zap.String("data", cfg.Data))
	st, closeStore, err := store.Open(ctx, cfg.Database, cfg.Data)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	defer closeStore() //nolint:errcheck
	n, err := st.Count(ctx)
	if err != nil {
		return err
	}
	logger.Info("dictionary loaded", zap.Int("entries", n))

	dict := klingon.NewDictionary(st, logger,
		klingon.WithAnalyzer(klingon.NewAnalyzer(
			klingon.WithMaxCandidates(cfg.MaxCandidates),
			klingon.WithLogger(logger))),
		klingon.WithLenient(cfg.Lenient),
		klingon.WithWorkers(cfg.Workers))

	return serve(ctx, cfg.Addr, newRouter(dict, st, logger, cfg.CORSOrigins), logger)
}

// serve runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, addr string, h http.Handler, logger *zap.Logger) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: h,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
