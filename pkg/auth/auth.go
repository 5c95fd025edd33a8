// Package auth guards the admin API with bearer-token validation.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vitistack/resolver-shim/pkg/auth/jwt"
	"github.com/vitistack/resolver-shim/pkg/rest/middleware"
)

func WithTokenValidation(logger *slog.Logger) middleware.MiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), jwt.RequestMethodKey, r.Method)
			ctx = context.WithValue(ctx, jwt.RequestRouteKey, r.URL.Path)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				resp := jwt.Errors[jwt.ErrUnAuthorized]
				w.WriteHeader(resp.Code)
				json.NewEncoder(w).Encode(resp)
				return
			}

			resp, err := jwt.Validate(ctx, token)
			if err != nil {
				logger.Error("token-validation failed", slog.String("reason", err.Error()))
				w.WriteHeader(resp.Code)
				json.NewEncoder(w).Encode(resp)
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}
