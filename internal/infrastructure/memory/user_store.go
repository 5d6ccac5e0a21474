// Package memory holds the process-local stores the API serves from. Data is
// loaded once at startup and lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/storefront/storefront-api/internal/core/domain"
)

type userEntry struct {
	mu   sync.Mutex
	user domain.User
}

// UserStore implements ports.UserRepository. The username index is built once
// and never changes; each user's record has its own lock.
type UserStore struct {
	order  []*userEntry
	byName map[string]*userEntry
}

// NewUserStore indexes users by username. When a username appears more than
// once, the first record wins.
func NewUserStore(users []domain.User) *UserStore {
	s := &UserStore{byName: make(map[string]*userEntry, len(users))}
	for i := range users {
		name := users[i].Username()
		if _, dup := s.byName[name]; dup {
			continue
		}
		e := &userEntry{user: *users[i].Clone()}
		s.order = append(s.order, e)
		s.byName[name] = e
	}
	return s
}

// Len returns the number of distinct users.
func (s *UserStore) Len() int { return len(s.order) }

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	e, ok := s.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.user.Clone(), nil
}

func (s *UserStore) FindByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.Login.Password != password {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserStore) UpdateCart(_ context.Context, username string, mutate func(domain.Cart) domain.Cart) (domain.Cart, error) {
	e, ok := s.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.user.Cart = mutate(e.user.Cart.Clone())
	return e.user.Cart.Clone(), nil
}
