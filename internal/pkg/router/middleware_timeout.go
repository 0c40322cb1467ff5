package router

import (
	"context"
	"net/http"
	"time"

	"github.com/shandysiswandi/contactrelay/internal/pkg/config"
)

// middlewareTimeout bounds the request context with app.server.request_timeout_seconds.
// A zero or negative value disables the deadline.
func middlewareTimeout(cfg config.Config) Middleware {
	var timeout time.Duration
	if cfg != nil {
		timeout = cfg.GetSecond("app.server.request_timeout_seconds")
	}

	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
