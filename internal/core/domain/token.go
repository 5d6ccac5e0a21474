package domain

import "time"

// TokenValidityTimeout is how long a token stays usable after it was last
// issued or used.
const TokenValidityTimeout = 15 * time.Minute

// AccessToken is the server-side record of an opaque bearer token.
type AccessToken struct {
	Username    string
	Token       string
	LastUpdated time.Time
}

// ValidAt reports whether the token is still fresh at now given the timeout.
func (t AccessToken) ValidAt(now time.Time, timeout time.Duration) bool {
	return now.Sub(t.LastUpdated) < timeout
}
