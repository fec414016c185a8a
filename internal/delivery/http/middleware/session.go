package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/domain"
	"careerai-web/pkg/logger"
	"careerai-web/pkg/security"
	"careerai-web/pkg/session"
)

// SessionCookieName carries the signed session token
const SessionCookieName = "careerai_session"

// SessionMiddleware resolves the visitor's session id from the signed cookie.
// A missing, expired or tampered cookie starts a fresh session.
func SessionMiddleware(signer *session.TokenSigner, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		var sessionID string
		reissue := false

		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			claims, err := signer.Parse(raw)
			switch {
			case session.IsExpired(err):
				logger.Log.Debug("discarding expired session cookie")
			case err != nil:
				security.DefaultLogger().LogSessionTokenRejected(c.Request.Context(), c.ClientIP(), response.RequestID(c), err.Error())
			default:
				sessionID = claims.Subject
				reissue = signer.NeedsRefresh(claims, now)
			}
		}
		if sessionID == "" {
			sessionID = session.NewSessionID()
			reissue = true
		}

		if reissue {
			token, err := signer.Issue(sessionID, now)
			if err != nil {
				reject(c, http.StatusInternalServerError, "Failed to start session")
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, token, int(signer.TTL().Seconds()), "/", "", secure, true)
		}

		c.Set(string(domain.KeySessionID), sessionID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeySessionID, sessionID))
		c.Next()
	}
}

// SessionID returns the id resolved by SessionMiddleware
func SessionID(c *gin.Context) string {
	return c.GetString(string(domain.KeySessionID))
}
