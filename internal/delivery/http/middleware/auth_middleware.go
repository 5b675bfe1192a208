package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-portfolio/internal/delivery/http/response"
	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid admin bearer token and stores its
// subject in the context under domain.KeySubject.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		subject, err := authUC.Authorize(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			code, message := http.StatusUnauthorized, "Invalid token"
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				code, message = appErr.Code, appErr.Message
			}
			response.Error(c, code, message, nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeySubject), subject)
		c.Next()
	}
}
