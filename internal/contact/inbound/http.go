package inbound

import (
	"net/http"

	"github.com/shandysiswandi/contactrelay/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/contact", end.Submit)
	r.Preflight("/api/contact", http.MethodPost)
}
