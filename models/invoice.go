package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	InvoiceNumber string `gorm:"uniqueIndex;not null" json:"invoice_number"`
	Status        string `gorm:"type:varchar(20);default:'draft'" json:"status"`

	Subtotal  float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TaxRate   float64 `gorm:"type:decimal(5,2);default:0.0" json:"tax_rate"`
	TaxAmount float64 `gorm:"type:decimal(10,2);default:0.0" json:"tax_amount"`
	Total     float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	DueDate *time.Time `json:"due_date"`
	PaidAt  *time.Time `json:"paid_at"`
	Notes   string     `json:"notes"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`

	Description string  `gorm:"not null" json:"description"`
	Quantity    int     `gorm:"default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Total       float64 `gorm:"type:decimal(10,2);not null" json:"total"`
	SortOrder   int     `gorm:"default:0" json:"sort_order"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return
}

// ValidInvoiceStatus reports whether s is one of the known invoice states.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}
