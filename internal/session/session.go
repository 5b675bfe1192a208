// Package session holds the admin login state on the client side. The
// stored token only decides what the UI offers; the server checks it on
// every protected request.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go-portfolio/internal/domain"
)

var (
	ErrPasswordRequired = errors.New("Please enter password")
	ErrInvalidPassword  = errors.New("Invalid password")
)

// Authenticator exchanges a password for a token.
type Authenticator interface {
	Login(ctx context.Context, password string) (*domain.AuthResponse, error)
}

type Store struct {
	auth   Authenticator
	tokens TokenStore
	log    *slog.Logger

	mu     sync.Mutex
	token  string
	subs   map[int]func(bool)
	nextID int

	// publish delivers changes to subscribers one at a time, in order.
	publish sync.Mutex
}

// New starts in admin state when tokens already holds a token.
func New(auth Authenticator, tokens TokenStore, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{auth: auth, tokens: tokens, log: log, subs: make(map[int]func(bool))}

	token, err := tokens.Load()
	if err != nil {
		log.Warn("failed to load admin token", "error", err)
	}
	s.token = token
	return s
}

func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Subscribe calls fn with the current admin state and again on every
// change until cancel is called. fn must not call Login or Logout.
func (s *Store) Subscribe(fn func(isAdmin bool)) (cancel func()) {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.token != ""
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Login enters admin state. An empty password fails without contacting
// the server; any server-side failure is reported as ErrInvalidPassword.
func (s *Store) Login(ctx context.Context, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}

	res, err := s.auth.Login(ctx, password)
	if err != nil {
		s.log.Warn("admin login failed", "error", err)
		return ErrInvalidPassword
	}
	if res == nil || res.Token == "" {
		s.log.Warn("admin login returned no token")
		return ErrInvalidPassword
	}

	if err := s.tokens.Save(res.Token); err != nil {
		s.log.Warn("failed to persist admin token", "error", err)
	}
	s.set(res.Token)
	return nil
}

// Logout leaves admin state. It never contacts the server.
func (s *Store) Logout() error {
	err := s.tokens.Clear()
	s.set("")
	return err
}

func (s *Store) set(token string) {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	changed := (s.token != "") != (token != "")
	s.token = token
	subs := make([]func(bool), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(token != "")
	}
}
