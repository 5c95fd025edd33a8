// Package overrides_service serves the runtime override rules. Rules created
// here take precedence over the environment table and live only as long as
// the daemon; emergency use, not configuration management.
package overrides_service

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/vitistack/resolver-shim/internal/overrides"
	"github.com/vitistack/resolver-shim/internal/repositories/override"
	"github.com/vitistack/resolver-shim/pkg/rest/response"
	"go.uber.org/zap"
)

type OverrideService struct {
	repo         *override.Repository
	overridesVar string
	log          *zap.SugaredLogger
}

func NewOverrideService(repo *override.Repository, overridesVar string, logger *zap.Logger) *OverrideService {
	return &OverrideService{
		repo:         repo,
		overridesVar: overridesVar,
		log:          logger.Sugar(),
	}
}

type overridesResponse struct {
	Runtime     []overrides.Rule `json:"runtime"`
	Environment []overrides.Rule `json:"environment"`
}

// GetOverrides reports the full effective table: runtime rules first, then
// the environment table parsed at request time.
func (svc *OverrideService) GetOverrides(w http.ResponseWriter, r *http.Request) {
	runtime, err := svc.repo.ReadAll()
	if err != nil {
		response.Err(w, response.ErrInternalError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, overridesResponse{
		Runtime:     runtime,
		Environment: overrides.Rules(os.Getenv(svc.overridesVar)),
	})
}

func (svc *OverrideService) CreateOverride(w http.ResponseWriter, r *http.Request) {
	var rule overrides.Rule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		response.Err(w, response.ErrInvalidInput, err.Error())
		return
	}

	if err := svc.repo.Create(rule); err != nil {
		response.Err(w, response.ErrInvalidInput, err.Error())
		return
	}

	svc.log.Infof("runtime override added: %v -> %v", rule.Pattern, rule.Addr)
	response.JSON(w, http.StatusCreated, rule)
}

func (svc *OverrideService) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	pattern := r.PathValue("pattern")
	if err := svc.repo.Delete(pattern); err != nil {
		response.Err(w, response.ErrNotFound, err.Error())
		return
	}

	svc.log.Infof("runtime override removed: %v", pattern)
	w.WriteHeader(http.StatusNoContent)
}
