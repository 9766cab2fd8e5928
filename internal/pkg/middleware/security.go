package middleware

import (
	"net/http"
	"strings"
)

// SecurityHeaders aplica os cabeçalhos de proteção padrão em todas as respostas.
// A Content-Security-Policy não é aplicada em docsPrefix, cuja UI usa scripts inline.
func SecurityHeaders(docsPrefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "SAMEORIGIN")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("X-DNS-Prefetch-Control", "off")
			h.Set("Strict-Transport-Security", "max-age=15552000; includeSubDomains")

			if docsPrefix == "" || !strings.HasPrefix(r.URL.Path, docsPrefix) {
				h.Set("Content-Security-Policy", "default-src 'self'; frame-ancestors 'self'")
			}

			next.ServeHTTP(w, r)
		})
	}
}
