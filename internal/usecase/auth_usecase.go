package usecase

import (
	"context"
	"net/http"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"
	"go-portfolio/pkg/logger"
)

// AdminSubject is the token subject of the single site owner.
const AdminSubject = "admin"

type PasswordChecker interface {
	Check(password string) error
}

type TokenManager interface {
	Generate(subject string) (string, error)
	Verify(token string) (string, error)
}

type authUsecase struct {
	passwords PasswordChecker
	tokens    TokenManager
}

func NewAuthUsecase(passwords PasswordChecker, tokens TokenManager) domain.AuthUsecase {
	return &authUsecase{passwords: passwords, tokens: tokens}
}

// Login reports every failure as the same 401 so callers cannot tell a
// wrong password from a missing one.
func (u *authUsecase) Login(ctx context.Context, password string) (*domain.AuthResponse, error) {
	if err := u.passwords.Check(password); err != nil {
		logger.Log.WarnContext(ctx, "admin login failed")
		return nil, apperror.Unauthorized("Invalid password")
	}

	token, err := u.tokens.Generate(AdminSubject)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	logger.Log.InfoContext(ctx, "admin login succeeded")
	return &domain.AuthResponse{Token: token, Message: "Login successful"}, nil
}

func (u *authUsecase) Authorize(ctx context.Context, token string) (string, error) {
	subject, err := u.tokens.Verify(token)
	if err != nil {
		return "", apperror.New(http.StatusUnauthorized, "Invalid or expired token", err)
	}
	if subject != AdminSubject {
		return "", apperror.Forbidden("Admin access required")
	}
	return subject, nil
}
