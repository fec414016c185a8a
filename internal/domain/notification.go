package domain

// NotificationLevel mirrors the two toast styles shown to the visitor.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a transient, user-visible message emitted by an operation.
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

func Success(message string) *Notification {
	return &Notification{Level: NotificationSuccess, Message: message}
}

func Failure(message string) *Notification {
	return &Notification{Level: NotificationError, Message: message}
}
