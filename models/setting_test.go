package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillingSettingsValidate(t *testing.T) {
	valid := BillingSettings{CreditsMode: CreditsModeCurrency, TokensPerCurrency: 1}
	assert.NoError(t, valid.Validate())

	valid.CreditsMode = CreditsModeToken
	valid.TokensPerCurrency = 0.25
	assert.NoError(t, valid.Validate())

	bad := BillingSettings{CreditsMode: "points", TokensPerCurrency: 1}
	assert.Error(t, bad.Validate())

	bad = BillingSettings{CreditsMode: CreditsModeCurrency, TokensPerCurrency: 0}
	assert.Error(t, bad.Validate())
}

func TestValidInvoiceStatus(t *testing.T) {
	for _, s := range []string{InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled} {
		assert.True(t, ValidInvoiceStatus(s))
	}
	assert.False(t, ValidInvoiceStatus("unpaid"))
	assert.False(t, ValidInvoiceStatus(""))
}
