package service

import "sync"

// DefaultMaxFailedAttempts is the number of consecutive failures after which
// a username is locked out.
const DefaultMaxFailedAttempts = 3

// LoginThrottle counts consecutive failed logins per username. The count only
// goes back to zero on a successful login; there is no time-based unlock.
type LoginThrottle struct {
	mu          sync.Mutex
	maxAttempts int
	failures    map[string]int
}

// NewLoginThrottle returns a throttle that locks a username out after
// maxAttempts consecutive failures. Values <= 0 select the default.
func NewLoginThrottle(maxAttempts int) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxFailedAttempts
	}
	return &LoginThrottle{maxAttempts: maxAttempts, failures: make(map[string]int)}
}

// FailureCount returns the current count, 0 for unknown usernames.
func (t *LoginThrottle) FailureCount(username string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failures[username]
}

// Allowed reports whether username may still attempt to authenticate.
func (t *LoginThrottle) Allowed(username string) bool {
	return t.FailureCount(username) < t.maxAttempts
}

func (t *LoginThrottle) RecordFailure(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[username]++
}

func (t *LoginThrottle) RecordSuccess(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[username] = 0
}
