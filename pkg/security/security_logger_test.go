package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "careerai-web", "test"), logs
}

func TestSecurityLoggerLevels(t *testing.T) {
	sl, logs := newObserved()
	ctx := context.Background()

	sl.LogCSRFViolation(ctx, "10.0.0.1", "curl/8", "req-1", "5f0c7a52-8f8e-4a4f-9f57-6f0f4c0b7c11", "/career-guidance/next", "missing")
	sl.LogRateLimitTriggered(ctx, "10.0.0.1", "curl/8", "req-2", "/resume-parsing/file")
	sl.LogUploadSpoofed(ctx, "10.0.0.1", "req-3", FileInspection{Extension: ".pdf", DeclaredMIME: "application/pdf", DetectedMIME: "image/png"})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "csrf_violation", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "HIGH", fields["severity"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "careerai-web", fields["service"])
	assert.Equal(t, HashValue("5f0c7a52-8f8e-4a4f-9f57-6f0f4c0b7c11"), fields["session_hash"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "WARN", entries[1].ContextMap()["severity"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "MEDIUM", entries[2].ContextMap()["severity"])
}

func TestSecurityLoggerOmitsEmptyFields(t *testing.T) {
	sl, logs := newObserved()
	sl.LogSessionTokenRejected(context.Background(), "", "", "signature is invalid")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "ip")
	assert.NotContains(t, fields, "request_id")
	assert.NotContains(t, fields, "session_hash")
	assert.Contains(t, fields, "details")
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityHIGH, GetSeverity(EventCSRFViolation))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("unknown")))
}

func TestHashValue(t *testing.T) {
	h := HashValue("5f0c7a52-8f8e-4a4f-9f57-6f0f4c0b7c11")
	assert.Len(t, h, 16)
	assert.Equal(t, h, HashValue("5f0c7a52-8f8e-4a4f-9f57-6f0f4c0b7c11"))
	assert.NotEqual(t, h, HashValue("other"))
}
