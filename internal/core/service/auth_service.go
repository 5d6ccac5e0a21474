package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// FaultReporter forwards internal faults to an error tracker (Sentry).
type FaultReporter interface {
	CaptureError(err error)
}

type nopReporter struct{}

func (nopReporter) CaptureError(error) {}

// AuthService implements login and bearer token authentication on top of the
// user store, the login throttle and the token registry.
type AuthService struct {
	users    ports.UserRepository
	throttle *LoginThrottle
	tokens   *TokenRegistry
	reporter FaultReporter
	log      zerolog.Logger

	// loginLocks makes the throttle check and the failure/success record of
	// a login one step per username.
	loginLocks *keyedMutex
}

func NewAuthService(
	users ports.UserRepository,
	throttle *LoginThrottle,
	tokens *TokenRegistry,
	reporter FaultReporter,
	log zerolog.Logger,
) *AuthService {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &AuthService{
		users:      users,
		throttle:   throttle,
		tokens:     tokens,
		reporter:   reporter,
		log:        log,
		loginLocks: newKeyedMutex(),
	}
}

// Login checks the credentials and returns the user's bearer token. Unknown
// usernames and wrong passwords fail with the same error. Once a username has
// reached the failure limit its credentials are no longer checked.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrMalformedRequest
	}

	unlock := s.loginLocks.Lock(username)
	defer unlock()

	if !s.throttle.Allowed(username) {
		s.log.Warn().Str("username", username).Msg("login rejected: locked out")
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.throttle.RecordFailure(username)
			s.log.Info().
				Str("username", username).
				Int("failures", s.throttle.FailureCount(username)).
				Msg("login failed")
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	s.throttle.RecordSuccess(username)
	token := s.tokens.IssueOrRefresh(user.Username())

	s.log.Info().Str("username", user.Username()).Msg("login succeeded")
	return token.Token, nil
}

// Authenticate resolves token to its user and extends the token's lifetime.
// A token whose user record is missing is reported as an internal fault and
// treated like an unknown token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	access, ok := s.tokens.Resolve(token)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByUsername(ctx, access.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			fault := fmt.Errorf("%w: token issued to %q has no user record", domain.ErrInconsistentState, access.Username)
			s.log.Error().Err(fault).Msg("authenticate")
			s.reporter.CaptureError(fault)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	// The token may have expired since Resolve.
	if !s.tokens.Touch(token) {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
