package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/domain/model"
	"github.com/guttosm/feeding-service/internal/service"
)

// AuditLog records a completed feeding action (a calculation or a saved target).
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, "info", actionType, message, fields)
	persistLogEntry(loggingService, entry)
}

// AuditLogError records a feeding action that failed.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	persistLogEntry(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
	}
	fillUser(c, entry)
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}

// fillUser copies the caller identity set by JWTAuth, if any.
func fillUser(c *gin.Context, entry *model.LogEntry) {
	entry.UserID = GetUserID(c)
	entry.UserEmail = GetUserEmail(c)
}
