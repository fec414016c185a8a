package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/response"
	"careerai-web/pkg/apperror"
	"careerai-web/pkg/logger"
)

// ErrorHandler renders the last error attached with c.Error as a JSON
// envelope. Handlers that already wrote a response are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed", "error", err, "request_id", response.RequestID(c), "path", c.Request.URL.Path)
				response.Error(c, appErr.Code, "An unexpected error occurred. Please try again later.", nil)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Internal details stay in the log.
		logger.Log.Error("unhandled error", "error", err, "request_id", response.RequestID(c), "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
