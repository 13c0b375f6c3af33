package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBalance is the per-user credit row. At most one row exists per user
// (unique index on user_id) and Credits never goes below zero; both are
// enforced by the ledger service, which is the only writer of this table.
// A user without a row is equivalent to a user with zero credits.
type UserBalance struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Credits int64     `gorm:"not null;default:0" json:"credits"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *UserBalance) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
