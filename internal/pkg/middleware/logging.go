package middleware

import (
	"fmt"
	"net/http"
	"time"

	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/httpx"
	"gocadastro/internal/pkg/logger"
)

// statusRecorder guarda o status escrito pelo handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.WriteHeader(http.StatusOK)
	}
	return s.ResponseWriter.Write(b)
}

// AccessLog registra método, caminho, status, duração e request id de cada requisição.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if id, ok := GetRequestIDFromContext(r.Context()); ok {
				fields["request_id"] = id
			}
			log.Info("Requisição concluída", fields)
		})
	}
}

// Recovery converte um panic do handler em 500 (INTERNAL_ERROR), sem derrubar o servidor.
// Se o handler já tinha escrito o cabeçalho, o panic é apenas registrado.
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					err := apperror.NewInternalError("panic no handler", fmt.Errorf("%v", rv))
					if rec.wroteHeader {
						log.Error("Panic após o envio da resposta.", err)
						return
					}
					httpx.Error(w, r, log, err)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}

// Chain aplica os middlewares em ordem: o primeiro da lista é o mais externo.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
