package middleware

import (
	"compliance-ai-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID preserves an incoming request ID or generates one, and echoes
// it back so a failed submission can be matched to the server log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}

		c.Set(response.ContextKeyRequestID, rid)
		c.Header(HeaderRequestID, rid)

		c.Next()
	}
}
