// Package api assembles the admin surface: override management, debug
// resolution, health and metrics.
package api

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	overrides_service "github.com/vitistack/resolver-shim/internal/api/handlers/overrides"
	resolve_service "github.com/vitistack/resolver-shim/internal/api/handlers/resolve"
	"github.com/vitistack/resolver-shim/internal/api/routes"
	"github.com/vitistack/resolver-shim/internal/repositories/override"
	"github.com/vitistack/resolver-shim/internal/resolver"
	"github.com/vitistack/resolver-shim/pkg/auth"
	"github.com/vitistack/resolver-shim/pkg/rest/middleware"
	"github.com/vitistack/resolver-shim/pkg/rest/response"
	"go.uber.org/zap"
)

func NewServer(port string, repo *override.Repository, overridesVar string, interceptor *resolver.Interceptor, zlog *zap.Logger, slogger *slog.Logger) *http.Server {
	overrideSvc := overrides_service.NewOverrideService(repo, overridesVar, zlog)
	resolveSvc := resolve_service.NewResolveService(interceptor)

	protected := middleware.Chain(
		middleware.WithIncomingRequestLogging(slogger),
		auth.WithTokenValidation(slogger),
	)

	mux := http.NewServeMux()
	mux.HandleFunc(routes.GET_OVERRIDES, protected(overrideSvc.GetOverrides))
	mux.HandleFunc(routes.POST_OVERRIDE, protected(overrideSvc.CreateOverride))
	mux.HandleFunc(routes.DELETE_OVERRIDE, protected(overrideSvc.DeleteOverride))
	mux.HandleFunc(routes.GET_RESOLVE, protected(resolveSvc.GetResolve))
	mux.HandleFunc(routes.GET_HEALTHZ, healthz)
	mux.Handle(routes.METRICS, promhttp.Handler())

	return &http.Server{
		Addr:    port,
		Handler: mux,
	}
}

func healthz(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
