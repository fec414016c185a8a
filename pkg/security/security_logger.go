package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered   EventType = "rate_limit_triggered"
	EventCSRFViolation        EventType = "csrf_violation"
	EventUploadSpoofed        EventType = "upload_spoofed"
	EventSessionTokenRejected EventType = "session_token_rejected"
)

// Severity is derived from EventType, never supplied by the caller
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

var EventSeverityMap = map[EventType]Severity{
	EventRateLimitTriggered:   SeverityWARN,
	EventSessionTokenRejected: SeverityWARN,
	EventUploadSpoofed:        SeverityMEDIUM,
	EventCSRFViolation:        SeverityHIGH,
}

// GetSeverity returns the severity for an event type, MEDIUM when unmapped
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp   time.Time
	Event       EventType
	IP          string
	UserAgent   string
	RequestID   string
	SessionHash string // HashValue of the session id, never the id itself
	Details     map[string]interface{}
}

// SecurityLogger writes security events as structured zap entries, separate
// from the application log so they can be shipped and alerted on apart.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *SecurityLogger

// NewSecurityLogger wraps an existing zap logger
func NewSecurityLogger(zl *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{zapLogger: zl, serviceName: serviceName, environment: environment}
}

// InitSecurityLogger builds the production zap logger and makes it the default
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// Containers collect stdout
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	SetDefault(NewSecurityLogger(logger, serviceName, environment))
	return defaultLogger
}

// SetDefault replaces the logger returned by DefaultLogger
func SetDefault(sl *SecurityLogger) {
	defaultLogger = sl
}

// DefaultLogger returns the default security logger instance
func DefaultLogger() *SecurityLogger {
	if defaultLogger == nil {
		return InitSecurityLogger("careerai-web", Environment())
	}
	return defaultLogger
}

// Log logs a security event at the level its severity maps to
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	severity := GetSeverity(event.Event)

	level := zapcore.WarnLevel
	switch severity {
	case SeverityINFO:
		level = zapcore.InfoLevel
	case SeverityHIGH:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(severity)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.SessionHash != "" {
		fields = append(fields, zap.String("session_hash", event.SessionHash))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventRateLimitTriggered,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint},
	})
}

// LogCSRFViolation logs a state-changing request with a missing or forged token
func (sl *SecurityLogger) LogCSRFViolation(ctx context.Context, ip, userAgent, requestID, sessionID, path, reason string) {
	event := SecurityEvent{
		Event:     EventCSRFViolation,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"path": path, "reason": reason},
	}
	if sessionID != "" {
		event.SessionHash = HashValue(sessionID)
	}
	sl.Log(ctx, event)
}

// LogUploadSpoofed logs an upload whose content does not match its extension
func (sl *SecurityLogger) LogUploadSpoofed(ctx context.Context, ip, requestID string, inspection FileInspection) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventUploadSpoofed,
		IP:        ip,
		RequestID: requestID,
		Details: map[string]interface{}{
			"extension": inspection.Extension,
			"declared":  inspection.DeclaredMIME,
			"detected":  inspection.DetectedMIME,
		},
	})
}

// LogSessionTokenRejected logs a session cookie that failed verification
func (sl *SecurityLogger) LogSessionTokenRejected(ctx context.Context, ip, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventSessionTokenRejected,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"reason": reason},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// HashValue creates a short SHA256 digest of a value for logging without PII
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

// Environment names the deployment from GIN_MODE
func Environment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
