package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gocadastro/internal/pkg/cache"
)

// FixedWindow limita cada chave a limit requisições por janela, com o contador no cache
// (INCR + EXPIRE). Serve para várias instâncias atrás de um balanceador.
type FixedWindow struct {
	client cache.Client
	limit  int
	period time.Duration
	prefix string
}

func NewFixedWindow(client cache.Client, limit int, period time.Duration) *FixedWindow {
	return &FixedWindow{
		client: client,
		limit:  limit,
		period: period,
		prefix: "rate-limit:",
	}
}

// Allow implementa Limiter.
func (f *FixedWindow) Allow(ctx context.Context, key string) (Decision, error) {
	k := f.prefix + key

	count, err := f.client.Incr(ctx, k)
	if err != nil {
		return Decision{}, fmt.Errorf("incrementar contador %s: %w", k, err)
	}
	// Primeira requisição da janela: inicia a expiração.
	if count == 1 {
		if err := f.client.Expire(ctx, k, f.period); err != nil {
			return Decision{}, fmt.Errorf("definir expiração %s: %w", k, err)
		}
	}

	d := Decision{Limit: f.limit}
	if count <= int64(f.limit) {
		d.Allowed = true
		d.Remaining = f.limit - int(count)
		return d, nil
	}

	ttl, err := f.client.TTL(ctx, k)
	switch {
	case errors.Is(err, cache.ErrCacheMiss):
		ttl = 0
	case err != nil:
		return Decision{}, fmt.Errorf("consultar TTL %s: %w", k, err)
	case ttl == 0:
		// Contador sem expiração (falha entre INCR e EXPIRE): recomeça a janela.
		if err := f.client.Expire(ctx, k, f.period); err != nil {
			return Decision{}, fmt.Errorf("definir expiração %s: %w", k, err)
		}
		ttl = f.period
	}
	d.RetryAfter = ttl
	return d, nil
}
