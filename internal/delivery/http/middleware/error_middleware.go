package middleware

import (
	"errors"
	"net/http"

	"compliance-ai-backend/internal/delivery/http/response"
	"compliance-ai-backend/pkg/apperror"
	"compliance-ai-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the context. Causes are
// echoed in the "error" field only when exposeDetails is set, which the
// router does outside production.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("Request failed",
				"status", appErr.Code,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(response.ContextKeyRequestID),
				"error", appErr.Detail(),
			)
		}

		detail := ""
		if exposeDetails {
			detail = appErr.Detail()
		}
		response.Error(c, appErr.Code, appErr.Message, detail)
	}
}
