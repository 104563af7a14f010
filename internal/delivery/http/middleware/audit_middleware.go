package middleware

import (
	"fmt"
	"net/http"

	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	auditActionKey = "AuditAction"
	auditTypeKey   = "AuditType"
)

// SetAudit marks the current request as auditable. The Audit middleware
// records the action with its outcome once the handler chain finishes.
func SetAudit(c *gin.Context, notifType, action string) {
	c.Set(auditTypeKey, notifType)
	c.Set(auditActionKey, action)
}

// Audit records one notification per auditable admin request, after the
// response status is known. Recording is best-effort and never changes the
// response.
func Audit(notifier domain.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		action := c.GetString(auditActionKey)
		if action == "" {
			return
		}
		notifType := c.GetString(auditTypeKey)
		if notifType == "" {
			notifType = domain.NotifyContent
		}

		actor := c.GetString(string(domain.KeyAdminUsername))
		if actor == "" {
			actor = "unknown"
		}

		outcome := "succeeded"
		if c.Writer.Status() >= http.StatusBadRequest {
			outcome = "failed"
		}

		msg := fmt.Sprintf("%s by %s %s", action, actor, outcome)
		notifier.Record(c.Request.Context(), notifType, msg)
	}
}
