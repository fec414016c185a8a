package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/response"
)

// APIPrefix is the path prefix of the JSON surface
const APIPrefix = "/v1"

// reject stops the chain with a JSON envelope for API calls and plain text
// for page requests.
func reject(c *gin.Context, code int, message string) {
	if strings.HasPrefix(c.Request.URL.Path, APIPrefix) {
		response.Error(c, code, message, nil)
	} else {
		c.String(code, message)
	}
	c.Abort()
}
