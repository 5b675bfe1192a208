package response

import (
	"go-portfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for messages and errors. Content is returned
// bare, see JSON.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// JSON sends a resource or collection without an envelope.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Success sends a success envelope
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error envelope
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}
