package notice

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the notice severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notice is a transient message shown to the user until it expires or is dismissed.
type Notice struct {
	ID        uuid.UUID `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// IsExpired reports whether the notice is past its expiry at now.
// A zero ExpiresAt never expires.
func (n Notice) IsExpired(now time.Time) bool {
	if n.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(n.ExpiresAt)
}
