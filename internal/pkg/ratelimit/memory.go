package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryStore mantém um token-bucket por chave, com limpeza periódica das chaves inativas.
type MemoryStore struct {
	mu           sync.Mutex
	entries      map[string]*storeEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
	now          func() time.Time
}

type storeEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type StoreOption func(*MemoryStore)

func WithIdleTTL(d time.Duration) StoreOption {
	return func(s *MemoryStore) { s.idleTTL = d }
}

func WithCleanupEvery(d time.Duration) StoreOption {
	return func(s *MemoryStore) { s.cleanupEvery = d }
}

// WithNow troca a fonte de tempo (usado nos testes).
func WithNow(now func() time.Time) StoreOption {
	return func(s *MemoryStore) { s.now = now }
}

func NewMemoryStore(rps float64, burst int, opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{
		entries:      make(map[string]*storeEntry),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow implementa Limiter. Nunca retorna erro.
func (s *MemoryStore) Allow(_ context.Context, key string) (Decision, error) {
	now := s.now()
	lim := s.get(key, now)

	d := Decision{Limit: s.burst}
	if lim.AllowN(now, 1) {
		d.Allowed = true
		d.Remaining = int(math.Floor(lim.TokensAt(now)))
		if d.Remaining < 0 {
			d.Remaining = 0
		}
		return d, nil
	}

	d.RetryAfter = s.retryAfter(lim.TokensAt(now))
	return d, nil
}

// retryAfter estima quanto falta para o próximo token ficar disponível.
func (s *MemoryStore) retryAfter(tokens float64) time.Duration {
	if s.rps <= 0 {
		return time.Second
	}
	missing := 1 - tokens
	if missing <= 0 {
		return 0
	}
	return time.Duration(missing / float64(s.rps) * float64(time.Second))
}

func (s *MemoryStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &storeEntry{lim: lim, lastSeen: now}
	return lim
}

// Cleanup remove as chaves sem uso há mais de idleTTL.
func (s *MemoryStore) Cleanup() {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// Len retorna o número de chaves rastreadas.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor inicia uma goroutine que limpa chaves inativas periodicamente.
// Pare cancelando o contexto.
func (s *MemoryStore) StartJanitor(ctx context.Context) {
	if s.cleanupEvery <= 0 {
		return
	}

	t := time.NewTicker(s.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}
