package models

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the hosting panel's account table. The billing add-on only
// reads it (existence checks, admin listings); the panel owns the lifecycle
// and this system never creates or deletes rows.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Name     string    `gorm:"not null" json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
