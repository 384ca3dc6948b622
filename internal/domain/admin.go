package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an editor account. Only the password hash is ever stored.
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
