package middleware

import (
	"errors"
	"net/http"

	"go-portfolio/internal/delivery/http/response"
	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"
	"go-portfolio/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Internal details stay in the log.
		logger.Log.Error("Internal Server Error",
			"error", err,
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
