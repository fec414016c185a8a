package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/domain"
	"careerai-web/pkg/security"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the header API clients echo the token in
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden field HTML forms echo the token in
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Every request gets a csrf_token cookie if it lacks one, and the token is
// exposed to templates through the context. State-changing requests must echo
// the cookie value either in the X-CSRF-Token header or in the csrf_token form
// field.
func CSRFMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)

		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				reject(c, http.StatusInternalServerError, "Failed to generate security token")
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",     // Domain (empty = current domain)
				secure, // Secure (HTTPS only in release)
				false,  // HttpOnly = false so API clients can read it
			)
			csrfCookie = newToken
		}
		c.Set(string(domain.KeyCSRFToken), csrfCookie)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		token := c.GetHeader(CSRFTokenHeaderName)
		if token == "" {
			if err := parseForm(c); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					reject(c, http.StatusRequestEntityTooLarge, "Request body too large")
					return
				}
			}
			token = c.PostForm(CSRFTokenFormField)
		}

		if token == "" {
			logCSRFViolation(c, "missing")
			reject(c, http.StatusForbidden, "Missing CSRF token")
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(csrfCookie)) != 1 {
			logCSRFViolation(c, "mismatch")
			reject(c, http.StatusForbidden, "Invalid CSRF token")
			return
		}

		c.Next()
	}
}

// CSRFToken returns the token set by CSRFMiddleware
func CSRFToken(c *gin.Context) string {
	return c.GetString(string(domain.KeyCSRFToken))
}

// parseForm reads the form body up front so read failures are not mistaken
// for a missing token.
func parseForm(c *gin.Context) error {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		_, err := c.MultipartForm()
		return err
	}
	return c.Request.ParseForm()
}

func logCSRFViolation(c *gin.Context, reason string) {
	security.DefaultLogger().LogCSRFViolation(c.Request.Context(),
		c.ClientIP(), c.GetHeader("User-Agent"), response.RequestID(c), SessionID(c), c.Request.URL.Path, reason)
}
