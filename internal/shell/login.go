package shell

import (
	"context"
	"sync"
)

// Authenticator is the part of the session store the login screen uses.
type Authenticator interface {
	Login(ctx context.Context, password string) error
}

type LoginScreen struct {
	session Authenticator

	mu       sync.Mutex
	password string
	errText  string
	loading  bool
}

func NewLoginScreen(session Authenticator) *LoginScreen {
	return &LoginScreen{session: session}
}

func (l *LoginScreen) SetPassword(password string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.password = password
}

func (l *LoginScreen) Error() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errText
}

func (l *LoginScreen) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Submit logs in and returns the path to navigate to on success.
func (l *LoginScreen) Submit(ctx context.Context) (next string, ok bool) {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return "", false
	}
	password := l.password
	l.loading = true
	l.errText = ""
	l.mu.Unlock()

	err := l.session.Login(ctx, password)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.errText = err.Error()
		return "", false
	}
	return "/", true
}
