package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the JSON envelope for non-auth endpoints and error replies.
// The auth endpoints return the application AuthResult directly, since its
// shape is part of the public contract.
type APIResponse[T any] struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
	Data      T           `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
}

func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Success:   true,
		Message:   message,
		RequestID: c.GetString("request_id"),
		Data:      data,
	})
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, APIResponse[any]{
		Success:   false,
		Message:   message,
		RequestID: c.GetString("request_id"),
		Errors:    details,
	})
}

// AbortError writes the envelope and stops the handler chain, for use in
// middleware.
func AbortError(c *gin.Context, status int, message string, details interface{}) {
	c.AbortWithStatusJSON(status, APIResponse[any]{
		Success:   false,
		Message:   message,
		RequestID: c.GetString("request_id"),
		Errors:    details,
	})
}
