// Package ratelimit implementa os limitadores de requisições por cliente:
// token-bucket em memória (golang.org/x/time/rate) e janela fixa no Redis.
package ratelimit

import (
	"context"
	"time"
)

// Decision é o resultado de uma consulta ao limitador.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decide se a requisição identificada por key pode seguir.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
