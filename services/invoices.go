package services

import (
	"errors"
	"fmt"
	"time"

	"billing-backend/models"
	"billing-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invoiceNumberAttempts = 5

type InvoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" binding:"min=0"`
	SortOrder   *int    `json:"sort_order"`
}

type CreateInvoiceInput struct {
	InvoiceNumber string             `json:"invoice_number"`
	Status        string             `json:"status" binding:"omitempty,oneof=draft pending paid overdue cancelled"`
	TaxRate       float64            `json:"tax_rate" binding:"min=0"`
	DueDate       *time.Time         `json:"due_date"`
	Notes         string             `json:"notes"`
	Items         []InvoiceItemInput `json:"items"`
}

type UpdateInvoiceInput struct {
	Status  *string    `json:"status" binding:"omitempty,oneof=draft pending paid overdue cancelled"`
	TaxRate *float64   `json:"tax_rate" binding:"omitempty,min=0"`
	DueDate *time.Time `json:"due_date"`
	Notes   *string    `json:"notes"`
}

// InvoiceService is the CRUD layer over invoices and their line items.
// Totals are always rederived from the current item set, so a partially
// applied item batch leaves the invoice in a recomputable state.
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// Create persists a new invoice with its items. The invoice number is
// generated when absent, retrying on collisions against the unique index.
func (s *InvoiceService) Create(userID uuid.UUID, input CreateInvoiceInput) (*models.Invoice, error) {
	var userCount int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&userCount).Error; err != nil {
		return nil, err
	}
	if userCount == 0 {
		return nil, ErrUserNotFound
	}

	status := input.Status
	if status == "" {
		status = models.InvoiceStatusDraft
	}

	var items []models.InvoiceItem
	var subtotal float64
	for i, item := range input.Items {
		itemTotal := float64(item.Quantity) * item.UnitPrice
		subtotal += itemTotal

		sortOrder := i
		if item.SortOrder != nil {
			sortOrder = *item.SortOrder
		}
		items = append(items, models.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       itemTotal,
			SortOrder:   sortOrder,
		})
	}

	taxAmount := subtotal * input.TaxRate / 100
	invoice := models.Invoice{
		UserID:        userID,
		InvoiceNumber: input.InvoiceNumber,
		Status:        status,
		Subtotal:      subtotal,
		TaxRate:       input.TaxRate,
		TaxAmount:     taxAmount,
		Total:         subtotal + taxAmount,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
		Items:         items,
	}
	if status == models.InvoiceStatusPaid {
		now := time.Now()
		invoice.PaidAt = &now
	}

	generated := invoice.InvoiceNumber == ""
	for attempt := 0; ; attempt++ {
		if generated {
			invoice.InvoiceNumber = generateInvoiceNumber()
		}
		err := s.db.Create(&invoice).Error
		if err == nil {
			return &invoice, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if !generated || attempt >= invoiceNumberAttempts {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateInvoiceNo, invoice.InvoiceNumber)
		}
	}
}

// Get returns an invoice with its items ordered by sort_order.
func (s *InvoiceService) Get(invoiceID uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Where("id = ?", invoiceID).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// GetByUser returns the invoice only when it belongs to userID; an invoice
// owned by someone else is indistinguishable from a missing one.
func (s *InvoiceService) GetByUser(userID, invoiceID uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.Get(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.UserID != userID {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

// ListByUser returns one page of the user's invoices, newest first,
// optionally filtered by status.
func (s *InvoiceService) ListByUser(userID uuid.UUID, status string, p utils.Pagination) ([]models.Invoice, int64, error) {
	query := s.db.Model(&models.Invoice{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []models.Invoice
	err := query.Order("created_at DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&invoices).Error
	return invoices, total, err
}

// Update patches invoice fields. A tax-rate change triggers a totals
// recomputation; flipping the status to paid stamps paid_at.
func (s *InvoiceService) Update(invoiceID uuid.UUID, input UpdateInvoiceInput) (*models.Invoice, error) {
	invoice, err := s.Get(invoiceID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		invoice.Status = *input.Status
		if invoice.Status == models.InvoiceStatusPaid && invoice.PaidAt == nil {
			now := time.Now()
			invoice.PaidAt = &now
		}
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}
	if input.TaxRate != nil {
		invoice.TaxRate = *input.TaxRate
	}

	// items are managed through the item endpoints, never implicitly re-saved
	if err := s.db.Omit("Items").Save(invoice).Error; err != nil {
		return nil, err
	}
	if input.TaxRate != nil {
		if err := s.RecalculateTotals(invoiceID); err != nil {
			return nil, err
		}
	}
	return s.Get(invoiceID)
}

// Delete removes the invoice; items go with it via the FK cascade.
func (s *InvoiceService) Delete(invoiceID uuid.UUID) error {
	result := s.db.Select("Items").Delete(&models.Invoice{ID: invoiceID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// AddItem appends a line item and recomputes the invoice totals.
func (s *InvoiceService) AddItem(invoiceID uuid.UUID, input InvoiceItemInput) (*models.InvoiceItem, error) {
	invoice, err := s.Get(invoiceID)
	if err != nil {
		return nil, err
	}

	sortOrder := len(invoice.Items)
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	}
	item := models.InvoiceItem{
		InvoiceID:   invoiceID,
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		Total:       float64(input.Quantity) * input.UnitPrice,
		SortOrder:   sortOrder,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	if err := s.RecalculateTotals(invoiceID); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem patches a line item and recomputes the invoice totals.
func (s *InvoiceService) UpdateItem(invoiceID, itemID uuid.UUID, input InvoiceItemInput) (*models.InvoiceItem, error) {
	var item models.InvoiceItem
	err := s.db.Where("id = ? AND invoice_id = ?", itemID, invoiceID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Description = input.Description
	item.Quantity = input.Quantity
	item.UnitPrice = input.UnitPrice
	item.Total = float64(input.Quantity) * input.UnitPrice
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	if err := s.RecalculateTotals(invoiceID); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a line item and recomputes the invoice totals.
func (s *InvoiceService) DeleteItem(invoiceID, itemID uuid.UUID) error {
	result := s.db.Where("id = ? AND invoice_id = ?", itemID, invoiceID).Delete(&models.InvoiceItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return s.RecalculateTotals(invoiceID)
}

// RecalculateTotals rederives subtotal, tax amount and total from whatever
// items currently exist and persists them.
func (s *InvoiceService) RecalculateTotals(invoiceID uuid.UUID) error {
	var invoice models.Invoice
	if err := s.db.Where("id = ?", invoiceID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvoiceNotFound
		}
		return err
	}

	var items []models.InvoiceItem
	if err := s.db.Where("invoice_id = ?", invoiceID).Find(&items).Error; err != nil {
		return err
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	taxAmount := subtotal * invoice.TaxRate / 100

	return s.db.Model(&invoice).Updates(map[string]interface{}{
		"subtotal":   subtotal,
		"tax_amount": taxAmount,
		"total":      subtotal + taxAmount,
	}).Error
}

func generateInvoiceNumber() string {
	return "INV-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
}
