package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitistack/resolver-shim/internal/api"
	"github.com/vitistack/resolver-shim/internal/checks"
	"github.com/vitistack/resolver-shim/internal/config"
	"github.com/vitistack/resolver-shim/internal/dnsproxy"
	"github.com/vitistack/resolver-shim/internal/overrides"
	"github.com/vitistack/resolver-shim/internal/repositories/override"
	"github.com/vitistack/resolver-shim/internal/resolver"
	"github.com/vitistack/resolver-shim/pkg/auth/jwt"
	"github.com/vitistack/resolver-shim/pkg/bslog"
	"github.com/vitistack/resolver-shim/pkg/lua"
	"github.com/vitistack/resolver-shim/pkg/persistence/store/memory"
	"go.uber.org/zap"
)

const SHUTDOWN_GRACE = 5 * time.Second

func main() {
	cfg := config.GetInstance()

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("could not create logger: %s", err)
	}
	defer logger.Sync()
	slogger := newSlogger(cfg.Server.Environment)
	slog.SetDefault(slogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := memory.NewStore[overrides.Rule]()
	repo := override.NewRepository(store)

	interceptor := resolver.NewInterceptor(
		resolver.WithOverridesVar(cfg.Shim.OverridesVar),
	)

	proxy := dnsproxy.New(
		cfg.Proxy.Listen,
		cfg.Proxy.Upstreams,
		logger,
		dnsproxy.WithSources(repo, overrides.EnvTable{Var: cfg.Shim.OverridesVar}),
	)

	prober := checks.NewProber(
		cfg.Proxy.Upstreams,
		cfg.Proxy.ProbeInterval(),
		newCheckerFactory(cfg.Proxy),
		proxy.SetUpstreams,
		logger,
	)
	prober.Start(ctx)

	if cfg.API.JWTSecret == "" {
		logger.Warn("no JWT secret configured; admin API will reject every token")
	}
	jwt.Init([]byte(cfg.API.JWTSecret))
	apiServer := api.NewServer(cfg.API.Port, repo, cfg.Shim.OverridesVar, interceptor, logger, slogger)

	errs := make(chan error, 2)
	go func() { errs <- proxy.ListenAndServe() }()
	go func() { errs <- apiServer.ListenAndServe() }()
	logger.Sugar().Infof("dns proxy listening on %v, admin api on %v", cfg.Proxy.Listen, cfg.API.Port)

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errs:
		logger.Sugar().Errorf("server failed: %v", err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_GRACE)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		logger.Sugar().Errorf("admin api shutdown: %v", err)
	}
	if err := proxy.Shutdown(); err != nil {
		logger.Sugar().Errorf("dns proxy shutdown: %v", err)
	}
	prober.Stop()
	lua.Shutdown()
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newSlogger(environment string) *slog.Logger {
	opts := &slog.HandlerOptions{
		ReplaceAttr: bslog.BaseReplaceAttr,
	}

	if environment == "dev" {
		opts.Level = slog.LevelDebug
		return slog.New(bslog.NewHandler(
			slog.NewTextHandler(os.Stdout, opts),
			bslog.InDevMode(),
		))
	}
	return slog.New(bslog.NewHandler(slog.NewJSONHandler(os.Stdout, opts)))
}

func newCheckerFactory(cfg config.Proxy) func(addr string) checks.Checker {
	switch cfg.CheckType {
	case checks.DNS:
		var opts []checks.DNSCheckerOption
		if cfg.CheckScript != "" {
			opts = append(opts, checks.WithValidator(checks.NewLuaValidator(cfg.CheckScript)))
		}
		return func(addr string) checks.Checker {
			return checks.NewDNSChecker(addr, cfg.ProbeName, checks.DEFAULT_TIMEOUT, opts...)
		}
	default:
		return func(addr string) checks.Checker {
			return checks.NewTCPChecker(cfg.CheckType, addr, checks.DEFAULT_TIMEOUT)
		}
	}
}
