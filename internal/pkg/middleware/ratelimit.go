package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/httpx"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/ratelimit"
)

// KeyFunc extrai a chave do cliente usada pelo limitador.
type KeyFunc func(r *http.Request) string

// ClientIP usa o host de RemoteAddr como chave do cliente.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// RateLimiter rejeita com 429 (RATE_LIMITED) os clientes que excederem o limite.
// Se o limitador falhar (ex.: Redis fora do ar) a requisição segue e a falha é registrada.
func RateLimiter(limiter ratelimit.Limiter, keyFn KeyFunc, log logger.Logger) func(http.Handler) http.Handler {
	if keyFn == nil {
		keyFn = ClientIP
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)

			d, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.Error("Falha no limitador de requisições; requisição liberada.", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

			if !d.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(d.RetryAfter)))
				log.Warn("Limite de requisições excedido.", map[string]interface{}{"client": key, "path": r.URL.Path})
				httpx.Error(w, r, log, apperror.NewRateLimitError(key))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds arredonda para cima, com mínimo de 1 segundo.
func retryAfterSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
