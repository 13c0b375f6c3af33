package services

import "errors"

// Validation failures are detected before any store mutation; store-level
// transaction failures roll back fully and surface as ErrLedgerWrite.
var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInsufficientCredits   = errors.New("insufficient credits")
	ErrUserNotFound          = errors.New("user not found")
	ErrIncompleteProfile     = errors.New("billing profile is missing required fields")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrDuplicateInvoiceNo    = errors.New("invoice number already in use")
	ErrItemNotFound          = errors.New("invoice item not found")
	ErrInvalidCurrencyCode   = errors.New("invalid currency code")
	ErrMissingBillingProfile = errors.New("user has no billing profile")
	ErrLedgerWrite           = errors.New("ledger write failed")
)
