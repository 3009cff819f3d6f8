package middleware

import (
	"net/http"

	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const secretHeaderName = "X-HevyStats-Secret"

// AuthMiddlewareHandler protects mutating endpoints (currently only
// the dataset reload) behind a shared secret. Read-only endpoints
// stay open.
type AuthMiddlewareHandler struct {
	reloadSecret   string
	protectedPaths map[string]bool
}

func NewAuthMiddlewareHandler(reloadSecret string) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		reloadSecret: reloadSecret,
		protectedPaths: map[string]bool{
			"/api/reload": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if !h.protectedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if h.reloadSecret == "" {
				log.Errorf("reload secret not set, rejecting %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "secret-not-set")
				return
			}

			if r.Header.Get(secretHeaderName) != h.reloadSecret {
				log.Tracef("[invalid secret] [auth middleware] unauthorized => %s from %s", r.URL.Path, pkg.ReadUserIP(r))
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-secret")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
