package middleware

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"careerai-web/pkg/apperror"
	"careerai-web/pkg/security"
	"careerai-web/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
	security.SetDefault(security.NewSecurityLogger(zap.NewNop(), "careerai-web", "test"))
}

func observeSecurityEvents(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	security.SetDefault(security.NewSecurityLogger(zap.New(core), "careerai-web", "test"))
	t.Cleanup(func() {
		security.SetDefault(security.NewSecurityLogger(zap.NewNop(), "careerai-web", "test"))
	})
	return logs
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCSRFMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CSRFMiddleware(false))
	r.GET("/page", func(c *gin.Context) { c.String(http.StatusOK, CSRFToken(c)) })
	r.POST("/v1/action", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/form", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := cookieNamed(rec, CSRFTokenCookieName)
	require.NotNil(t, cookie)
	assert.Len(t, cookie.Value, 64)
	assert.Equal(t, cookie.Value, rec.Body.String())

	t.Run("Should reject a post without token", func(t *testing.T) {
		logs := observeSecurityEvents(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/action", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing CSRF token")

		events := logs.FilterMessage("csrf_violation").All()
		require.Len(t, events, 1)
		assert.Equal(t, map[string]interface{}{"path": "/v1/action", "reason": "missing"}, events[0].ContextMap()["details"])
	})

	t.Run("Should reject a mismatched header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/action", nil)
		req.AddCookie(cookie)
		req.Header.Set(CSRFTokenHeaderName, "forged")
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Should accept a matching header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/action", nil)
		req.AddCookie(cookie)
		req.Header.Set(CSRFTokenHeaderName, cookie.Value)
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Should accept a matching form field", func(t *testing.T) {
		rec := httptest.NewRecorder()
		form := url.Values{CSRFTokenFormField: {cookie.Value}}
		req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestSessionMiddleware(t *testing.T) {
	signer := session.NewTokenSigner("secret", time.Hour)
	r := gin.New()
	r.Use(SessionMiddleware(signer, false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := cookieNamed(rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	first := rec.Body.String()
	assert.NotEmpty(t, first)

	t.Run("Should keep the session for a valid cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(rec, req)
		assert.Equal(t, first, rec.Body.String())
		assert.Nil(t, cookieNamed(rec, SessionCookieName), "fresh token is not reissued")
	})

	t.Run("Should start over for a tampered cookie", func(t *testing.T) {
		logs := observeSecurityEvents(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie.Value + "x"})
		r.ServeHTTP(rec, req)
		assert.NotEqual(t, first, rec.Body.String())
		assert.NotNil(t, cookieNamed(rec, SessionCookieName))
		assert.Equal(t, 1, logs.FilterMessage("session_token_rejected").Len())
	})

	t.Run("Should quietly replace an expired cookie", func(t *testing.T) {
		logs := observeSecurityEvents(t)
		stale, err := signer.Issue(session.NewSessionID(), time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: stale})
		r.ServeHTTP(rec, req)
		assert.NotNil(t, cookieNamed(rec, SessionCookieName))
		assert.Zero(t, logs.Len())
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	run := func(t *testing.T, client *goredis.Client) {
		r := gin.New()
		r.Use(RateLimitMiddleware(client, GlobalRateLimitConfig(2, time.Minute)))
		r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
			codes = append(codes, rec.Code)
			if i == 2 {
				assert.NotEmpty(t, rec.Header().Get("Retry-After"))
			}
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	}

	t.Run("Should limit in memory without redis", func(t *testing.T) {
		run(t, nil)
	})

	t.Run("Should limit through redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		defer client.Close()
		run(t, client)
		assert.True(t, mr.Exists("rl:ip:192.0.2.1"))
	})

	t.Run("Should fall back to memory when redis fails", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
		defer client.Close()
		mr.Close()
		run(t, client)
	})
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/v1/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDAndErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/v1/missing", func(c *gin.Context) { _ = c.Error(apperror.NotFound("Job not found")) })
	r.GET("/v1/boom", func(c *gin.Context) { _ = c.Error(errors.New("pq: connection refused")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job not found")
	id := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Contains(t, rec.Body.String(), id)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")

	t.Run("Should reuse a well-formed incoming id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/missing", nil)
		req.Header.Set(RequestIDHeader, "1b4e28ba-2fa1-11d2-883f-0016d3cca427")
		r.ServeHTTP(rec, req)
		assert.Equal(t, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", rec.Header().Get(RequestIDHeader))
	})
}

func TestBodyLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimitMiddleware(8))
	r.POST("/v1/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/echo", strings.NewReader("this is far too long")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/echo", strings.NewReader("short")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBodyLimitBeforeCSRF(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimitMiddleware(256), CSRFMiddleware(false))
	r.POST("/resume-parsing/file", func(c *gin.Context) { c.Status(http.StatusSeeOther) })

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("%PDF-1.4 "), 100))
	require.NoError(t, err)
	require.NoError(t, w.WriteField(CSRFTokenFormField, "token"))
	require.NoError(t, w.Close())

	logs := observeSecurityEvents(t)
	req := httptest.NewRequest(http.MethodPost, "/resume-parsing/file", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.ContentLength = -1
	req.AddCookie(&http.Cookie{Name: CSRFTokenCookieName, Value: "token"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, logs.FilterMessage("csrf_violation").All())
}
