package services

import (
	"strings"
	"testing"

	"billing-backend/models"
	"billing-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestCreateInvoiceComputesTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	invoice, err := svc.Create(user.ID, CreateInvoiceInput{
		TaxRate: 10,
		Items: []InvoiceItemInput{
			{Description: "Web hosting", Quantity: 2, UnitPrice: 10},
			{Description: "Domain", Quantity: 1, UnitPrice: 5},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 25.0, invoice.Subtotal, 1e-9)
	assert.InDelta(t, 2.5, invoice.TaxAmount, 1e-9)
	assert.InDelta(t, 27.5, invoice.Total, 1e-9)
	assert.Equal(t, models.InvoiceStatusDraft, invoice.Status)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
}

func TestAddItemRecalculatesTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	invoice, err := svc.Create(user.ID, CreateInvoiceInput{
		TaxRate: 10,
		Items: []InvoiceItemInput{
			{Description: "Web hosting", Quantity: 2, UnitPrice: 10},
			{Description: "Domain", Quantity: 1, UnitPrice: 5},
		},
	})
	require.NoError(t, err)

	_, err = svc.AddItem(invoice.ID, InvoiceItemInput{
		Description: "SSL certificate", Quantity: 1, UnitPrice: 10,
	})
	require.NoError(t, err)

	updated, err := svc.Get(invoice.ID)
	require.NoError(t, err)
	assert.InDelta(t, 35.0, updated.Subtotal, 1e-9)
	assert.InDelta(t, 3.5, updated.TaxAmount, 1e-9)
	assert.InDelta(t, 38.5, updated.Total, 1e-9)
}

func TestDeleteItemRecalculatesTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	invoice, err := svc.Create(user.ID, CreateInvoiceInput{
		TaxRate: 20,
		Items: []InvoiceItemInput{
			{Description: "Backup storage", Quantity: 1, UnitPrice: 40},
			{Description: "Support hours", Quantity: 2, UnitPrice: 30},
		},
	})
	require.NoError(t, err)
	require.Len(t, invoice.Items, 2)

	require.NoError(t, svc.DeleteItem(invoice.ID, invoice.Items[1].ID))

	updated, err := svc.Get(invoice.ID)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, updated.Subtotal, 1e-9)
	assert.InDelta(t, 8.0, updated.TaxAmount, 1e-9)
	assert.InDelta(t, 48.0, updated.Total, 1e-9)
	assert.Len(t, updated.Items, 1)
}

func TestUpdateTaxRateRecalculatesTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	invoice, err := svc.Create(user.ID, CreateInvoiceInput{
		Items: []InvoiceItemInput{{Description: "Web hosting", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, invoice.Total, 1e-9)

	updated, err := svc.Update(invoice.ID, UpdateInvoiceInput{TaxRate: floatPtr(19)})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, updated.Subtotal, 1e-9)
	assert.InDelta(t, 19.0, updated.TaxAmount, 1e-9)
	assert.InDelta(t, 119.0, updated.Total, 1e-9)
}

func TestUpdateStatusPaidStampsPaidAt(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	invoice, err := svc.Create(user.ID, CreateInvoiceInput{
		Status: models.InvoiceStatusPending,
		Items:  []InvoiceItemInput{{Description: "Web hosting", Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)
	assert.Nil(t, invoice.PaidAt)

	updated, err := svc.Update(invoice.ID, UpdateInvoiceInput{Status: strPtr(models.InvoiceStatusPaid)})
	require.NoError(t, err)
	assert.NotNil(t, updated.PaidAt)
}

func TestItemSortOrderDefaultsToPosition(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	invoice, err := svc.Create(user.ID, CreateInvoiceInput{
		Items: []InvoiceItemInput{
			{Description: "First", Quantity: 1, UnitPrice: 1},
			{Description: "Second", Quantity: 1, UnitPrice: 1},
			{Description: "Third", Quantity: 1, UnitPrice: 1, SortOrder: intPtr(9)},
		},
	})
	require.NoError(t, err)

	loaded, err := svc.Get(invoice.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 3)
	assert.Equal(t, 0, loaded.Items[0].SortOrder)
	assert.Equal(t, 1, loaded.Items[1].SortOrder)
	assert.Equal(t, 9, loaded.Items[2].SortOrder)
}

func TestCreateGeneratesUniqueNumbers(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	first, err := svc.Create(user.ID, CreateInvoiceInput{})
	require.NoError(t, err)
	second, err := svc.Create(user.ID, CreateInvoiceInput{})
	require.NoError(t, err)

	assert.NotEqual(t, first.InvoiceNumber, second.InvoiceNumber)
}

func TestCreateRejectsDuplicateExplicitNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	_, err := svc.Create(user.ID, CreateInvoiceInput{InvoiceNumber: "INV-FIXED-1"})
	require.NoError(t, err)

	_, err = svc.Create(user.ID, CreateInvoiceInput{InvoiceNumber: "INV-FIXED-1"})
	assert.Error(t, err)
}

func TestCreateForUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)

	_, err := svc.Create(uuid.New(), CreateInvoiceInput{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteInvoiceCascadesToItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	invoice, err := svc.Create(user.ID, CreateInvoiceInput{
		Items: []InvoiceItemInput{{Description: "Web hosting", Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(invoice.ID))

	var itemCount int64
	require.NoError(t, db.Model(&models.InvoiceItem{}).Where("invoice_id = ?", invoice.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount)

	_, err = svc.Get(invoice.ID)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestGetByUserHidesForeignInvoices(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	owner := createTestUser(t, db)
	stranger := createTestUser(t, db)

	invoice, err := svc.Create(owner.ID, CreateInvoiceInput{})
	require.NoError(t, err)

	_, err = svc.GetByUser(stranger.ID, invoice.ID)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)

	found, err := svc.GetByUser(owner.ID, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.ID, found.ID)
}

func TestListByUserFiltersAndPaginates(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(db)
	user := createTestUser(t, db)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(user.ID, CreateInvoiceInput{Status: models.InvoiceStatusPending})
		require.NoError(t, err)
	}
	_, err := svc.Create(user.ID, CreateInvoiceInput{Status: models.InvoiceStatusPaid})
	require.NoError(t, err)

	pending, total, err := svc.ListByUser(user.ID, models.InvoiceStatusPending, utils.Pagination{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, pending, 2)

	all, total, err := svc.ListByUser(user.ID, "", utils.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, all, 4)
}
