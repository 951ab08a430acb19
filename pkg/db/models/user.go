package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/pkg/enums"
)

// User is a team member who records observations. LineID links the account to
// its LINE identity and stays null for seeded accounts.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Role        enums.UserRole `gorm:"type:user_role;not null;default:'worker'" json:"role"`
	LineID      *string        `gorm:"type:text;uniqueIndex" json:"-"`
	LastLoginAt *time.Time     `gorm:"type:timestamptz" json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time      `gorm:"type:timestamptz;default:now()" json:"createdAt"`
}
