package security

import (
	"net/http"
	"strings"
)

// CORS answers preflight requests and tags responses for the configured
// origins. A "*" entry allows any origin.
type CORS struct {
	allowAll bool
	origins  map[string]bool
}

func NewCORS(origins []string) *CORS {
	c := &CORS{origins: make(map[string]bool, len(origins))}
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			c.allowAll = true
			continue
		}
		if o != "" {
			c.origins[o] = true
		}
	}
	return c
}

func (c *CORS) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			switch {
			case c.allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case c.origins[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Max-Age", "300") // 5 minutes

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
