package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingProfile holds the legal/address record printed on invoices, one row
// per user. FullName, AddressLine1, City, PostalCode and CountryCode must be
// present before the first creation succeeds; later updates may patch any
// subset of fields.
type BillingProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FullName     string `gorm:"not null" json:"full_name"`
	CompanyName  string `json:"company_name"`
	AddressLine1 string `gorm:"not null" json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `gorm:"not null" json:"city"`
	State        string `json:"state"`
	PostalCode   string `gorm:"not null" json:"postal_code"`
	CountryCode  string `gorm:"type:varchar(2);not null" json:"country_code"`
	VatID        string `json:"vat_id"`
	Phone        string `json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *BillingProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
