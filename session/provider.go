// ABOUTME: Session identity provider - a stable opaque token per browsing context.
// ABOUTME: Persistence is best-effort; store failures degrade to an in-memory token.

package session

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// storageKey is the fixed namespace key under which the session token is
// persisted in the host-provided store.
const storageKey = "coffeesip:session-uuid"

// Provider produces and caches the session token shared with the backend.
// The token outlives transcript clears and is replaced only by Reset.
type Provider struct {
	mu     sync.Mutex
	store  Store
	token  string
	logger *slog.Logger
}

// NewProvider creates a provider backed by the given store. A nil store or
// nil logger falls back to an in-memory store and slog.Default respectively.
func NewProvider(store Store, logger *slog.Logger) *Provider {
	if store == nil {
		store = NewMemoryStore()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		store:  store,
		logger: logger.With("component", "session"),
	}
}

// GetOrCreate returns the current session token. On first use it adopts a
// previously persisted token if one exists; otherwise it generates a fresh
// one and persists it best-effort. The same token is returned on every
// subsequent call until Reset.
func (p *Provider) GetOrCreate() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" {
		return p.token
	}

	stored, err := p.store.Get(storageKey)
	if err == nil && stored != "" {
		p.token = stored
		p.logger.Debug("adopted persisted session token")
		return p.token
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		p.logger.Warn("session store read failed, generating in-memory token", "error", err)
	}

	p.token = p.mint()
	return p.token
}

// Reset generates a fresh token, persists it best-effort, and returns it.
// Used to start a logically new conversation against the backend.
func (p *Provider) Reset() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = p.mint()
	return p.token
}

// mint generates and best-effort persists a new token. Must be called with
// mu held.
func (p *Provider) mint() string {
	token := uuid.New().String()
	if err := p.store.Set(storageKey, token); err != nil {
		// Loss of durability must never block chat functionality.
		p.logger.Warn("session store write failed, token is in-memory only", "error", err)
	}
	return token
}
