// Package resolve_service exposes a debug endpoint that runs a hostname
// through the interceptor, showing exactly what a process using the shim
// would get back.
package resolve_service

import (
	"net/http"

	"github.com/vitistack/resolver-shim/internal/resolver"
	"github.com/vitistack/resolver-shim/pkg/rest/response"
)

type ResolveService struct {
	interceptor *resolver.Interceptor
}

func NewResolveService(interceptor *resolver.Interceptor) *ResolveService {
	return &ResolveService{interceptor: interceptor}
}

type resolveResponse struct {
	Host    string              `json:"host"`
	Records []resolver.AddrInfo `json:"records"`
}

func (rs *ResolveService) GetResolve(w http.ResponseWriter, r *http.Request) {
	host := r.PathValue("host")

	records, err := rs.interceptor.Resolve(r.Context(), &resolver.Request{
		Host:    host,
		Service: r.URL.Query().Get("service"),
	})
	if err != nil {
		response.Err(w, response.ErrNotFound, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, resolveResponse{
		Host:    host,
		Records: records,
	})
}
