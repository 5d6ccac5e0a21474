package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// RegistryOption customises a TokenRegistry.
type RegistryOption func(*TokenRegistry)

// WithClock replaces time.Now as the registry's time source.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *TokenRegistry) { r.now = now }
}

// WithTokenGenerator replaces the function used to mint token strings.
func WithTokenGenerator(gen func() string) RegistryOption {
	return func(r *TokenRegistry) { r.generate = gen }
}

// TokenRegistry holds at most one access token per username. Freshness is
// evaluated on every lookup; expired entries stay until the username logs in
// again and its slot is overwritten.
type TokenRegistry struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	generate func() string
	byUser   map[string]*domain.AccessToken
	byToken  map[string]string // token -> username
}

func NewTokenRegistry(ttl time.Duration, opts ...RegistryOption) *TokenRegistry {
	if ttl <= 0 {
		ttl = domain.TokenValidityTimeout
	}
	r := &TokenRegistry{
		ttl:      ttl,
		now:      time.Now,
		generate: newOpaqueToken,
		byUser:   make(map[string]*domain.AccessToken),
		byToken:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IssueOrRefresh returns the username's unexpired token with its LastUpdated
// moved to now, or mints a new one if there is none.
func (r *TokenRegistry) IssueOrRefresh(username string) domain.AccessToken {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if current, ok := r.byUser[username]; ok {
		if current.ValidAt(now, r.ttl) {
			current.LastUpdated = now
			return *current
		}
		delete(r.byToken, current.Token)
	}

	token := &domain.AccessToken{
		Username:    username,
		Token:       r.unusedToken(),
		LastUpdated: now,
	}
	r.byUser[username] = token
	r.byToken[token.Token] = username
	return *token
}

// Resolve returns the fresh token matching token, if any. It does not extend
// the token's lifetime; see Touch.
func (r *TokenRegistry) Resolve(token string) (domain.AccessToken, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.lookup(token)
	if !ok || !current.ValidAt(r.now(), r.ttl) {
		return domain.AccessToken{}, false
	}
	return *current, true
}

// Touch moves a fresh token's LastUpdated to now. It reports false when the
// token is unknown or already expired.
func (r *TokenRegistry) Touch(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	current, ok := r.lookup(token)
	if !ok || !current.ValidAt(now, r.ttl) {
		return false
	}
	current.LastUpdated = now
	return true
}

// Len returns the number of stored tokens, expired ones included.
func (r *TokenRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byUser)
}

func (r *TokenRegistry) lookup(token string) (*domain.AccessToken, bool) {
	username, ok := r.byToken[token]
	if !ok {
		return nil, false
	}
	current, ok := r.byUser[username]
	if !ok || current.Token != token {
		return nil, false
	}
	return current, true
}

// unusedToken mints until it finds a string not already in use. With random
// UUIDs the loop runs once in practice.
func (r *TokenRegistry) unusedToken() string {
	for {
		t := r.generate()
		if _, taken := r.byToken[t]; !taken {
			return t
		}
	}
}

// newOpaqueToken returns 32 lowercase hex characters from a random UUID.
func newOpaqueToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
