package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// logAudit writes one line per business event in key=value form. Empty
// fields are omitted so the lines stay grep-friendly.
func logAudit(e *domain.AuditEvent) {
	line := fmt.Sprintf("%s: success=%t", e.EventType, e.Success)
	if e.UserID != "" {
		line += " user_id=" + e.UserID
	}
	if e.Email != "" {
		line += " email=" + e.Email
	}
	if e.ErrorMsg != "" {
		line += fmt.Sprintf(" error=%q", e.ErrorMsg)
	}
	log.Printf("%s timestamp=%s", line, e.Timestamp.Format(time.RFC3339))
}
