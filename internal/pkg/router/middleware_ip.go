package router

import (
	"net"
	"net/http"
	"strings"
)

// clientIPHeaders are consulted in order. X-Forwarded-For contributes its
// left-most entry, the address the first proxy saw.
var clientIPHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

// middlewareIP rewrites RemoteAddr to the client address reported by the
// proxy in front of the service (CloudFront, API Gateway, a load balancer).
func middlewareIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := clientIP(r); ip != "" {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	for _, name := range clientIPHeaders {
		v := r.Header.Get(name)
		if v == "" {
			continue
		}
		first, _, _ := strings.Cut(v, ",")
		if ip := parseIP(first); ip != "" {
			return ip
		}
	}

	return parseIP(r.RemoteAddr)
}

// parseIP accepts a bare IP or host:port and returns the IP, or "".
func parseIP(v string) string {
	v = strings.TrimSpace(v)
	if host, _, err := net.SplitHostPort(v); err == nil {
		v = host
	}
	if net.ParseIP(v) == nil {
		return ""
	}
	return v
}
