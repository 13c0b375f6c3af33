package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Setting is one process-wide configuration value. The billing settings
// (currency, display mode, exchange ratio) live here so administrative
// changes apply to the next request without a restart.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Setting keys used by the billing subsystem.
const (
	SettingDefaultCurrency   = "default_currency"
	SettingCurrencies        = "currencies"
	SettingCreditsMode       = "credits_mode"
	SettingTokensPerCurrency = "tokens_per_currency"
	SettingCompanyName       = "company_name"
	SettingCompanyAddress    = "company_address"
	SettingCompanyVatID      = "company_vat_id"
)

const (
	CreditsModeCurrency = "currency"
	CreditsModeToken    = "token"
)

// BillingSettings is the typed view of the display settings an administrator
// can change. TokensPerCurrency is a label ratio only; stored balances are
// never converted.
type BillingSettings struct {
	CreditsMode       string  `json:"credits_mode" validate:"required,oneof=currency token"`
	TokensPerCurrency float64 `json:"tokens_per_currency" validate:"gt=0"`
}

var settingsValidate = validator.New()

func (s *BillingSettings) Validate() error {
	return settingsValidate.Struct(s)
}
