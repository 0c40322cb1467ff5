package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shandysiswandi/contactrelay/internal/pkg/config"
)

const msgMaintenance = "service is under maintenance"

// maintenanceRules holds the entries of app.maintenance.endpoints:
// "/path" blocks every method, "METHOD /path" blocks one method and "*"
// blocks every route except the health check.
type maintenanceRules struct {
	all    bool
	routes map[string]struct{}
}

func newMaintenanceRules(entries []string) maintenanceRules {
	rules := maintenanceRules{routes: make(map[string]struct{})}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		switch {
		case e == "":
		case e == "*":
			rules.all = true
		default:
			method, path, ok := strings.Cut(e, " ")
			if ok {
				e = strings.ToUpper(method) + " " + strings.TrimSpace(path)
			}
			rules.routes[e] = struct{}{}
		}
	}
	return rules
}

func (m maintenanceRules) empty() bool {
	return !m.all && len(m.routes) == 0
}

func (m maintenanceRules) blocks(method, route string) bool {
	if m.all {
		return route != healthPath
	}
	if _, ok := m.routes[route]; ok {
		return true
	}
	_, ok := m.routes[method+" "+route]
	return ok
}

// middlewareMaintenance answers 503 for the routes under maintenance, with
// Retry-After when app.maintenance.retry_after_seconds is set.
func middlewareMaintenance(cfg config.Config) Middleware {
	var (
		rules      maintenanceRules
		retryAfter int
	)
	if cfg != nil {
		rules = newMaintenanceRules(cfg.GetArray("app.maintenance.endpoints"))
		retryAfter = cfg.GetInt("app.maintenance.retry_after_seconds")
	}

	return func(next http.Handler) http.Handler {
		if rules.empty() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rules.blocks(r.Method, matchedRoutePath(r)) {
				next.ServeHTTP(w, r)
				return
			}

			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			}
			writeJSON(w, errorResponse{Error: msgMaintenance}, http.StatusServiceUnavailable)
		})
	}
}
