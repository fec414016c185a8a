package response

import (
	"github.com/gin-gonic/gin"

	"careerai-web/internal/domain"
)

// Response standardizes the API JSON response
type Response struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Data         interface{}          `json:"data,omitempty"`
	Error        interface{}          `json:"error,omitempty"`
	Notification *domain.Notification `json:"notification,omitempty"`
	RequestID    string               `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: RequestID(c),
	})
}

// Notify sends a success response carrying the toast the action produced
func Notify(c *gin.Context, code int, note *domain.Notification, data interface{}) {
	message := "OK"
	if note != nil {
		message = note.Message
	}
	c.JSON(code, Response{
		Success:      true,
		Message:      message,
		Data:         data,
		Notification: note,
		RequestID:    RequestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: RequestID(c),
	})
}

// RequestID returns the id assigned by the request id middleware
func RequestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string)
	return idStr
}
