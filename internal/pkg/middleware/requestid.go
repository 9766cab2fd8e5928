package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey é o tipo das chaves que os middlewares anexam ao contexto.
// Context Keys devem ser não-exportadas e de um tipo único.
type ContextKey int

const (
	RequestIDKey ContextKey = iota
)

// RequestIDHeader é o cabeçalho que carrega o identificador da requisição.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID reaproveita o X-Request-ID recebido ou gera um UUID novo,
// devolvendo-o na resposta e anexando-o ao contexto.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestIDFromContext extrai o identificador anexado por RequestID.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
