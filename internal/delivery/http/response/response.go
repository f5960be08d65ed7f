package response

import (
	"github.com/gin-gonic/gin"
)

// ContextKeyRequestID is where the request ID middleware stores the ID.
const ContextKeyRequestID = "RequestID"

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(ContextKeyRequestID),
	})
}

// Error sends an error response. detail is omitted from the body when empty.
func Error(c *gin.Context, code int, message string, detail string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: c.GetString(ContextKeyRequestID),
	})
}
