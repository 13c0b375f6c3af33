package services

import (
	"fmt"
	"strconv"
	"strings"

	"billing-backend/models"
	"billing-backend/utils"
)

// Currency describes one display currency. The code is an ISO 4217 string;
// the symbol is for label formatting only.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Built-in fallback table used when no override list is configured.
var defaultCurrencies = []Currency{
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Złoty"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
}

// CurrencyService resolves the active currency and formats amounts for
// presentation. Settings are read fresh on every call so administrative
// changes take effect for the next request; nothing is cached here.
type CurrencyService struct {
	settings SettingsStore
}

func NewCurrencyService(settings SettingsStore) *CurrencyService {
	return &CurrencyService{settings: settings}
}

// AvailableCurrencies returns the configured override list, falling back to
// the built-in table. Malformed codes in the override list are dropped.
func (s *CurrencyService) AvailableCurrencies() []Currency {
	raw, err := s.settings.GetValue(models.SettingCurrencies)
	if err != nil || strings.TrimSpace(raw) == "" {
		return defaultCurrencies
	}

	var list []Currency
	for _, code := range strings.Split(raw, ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if !utils.ValidateCurrencyCode(code) {
			continue
		}
		list = append(list, currencyForCode(code))
	}
	if len(list) == 0 {
		return defaultCurrencies
	}
	return list
}

// ResolveDefaultCurrency picks the configured default if it is in the
// resolved list, else EUR, else the first entry.
func (s *CurrencyService) ResolveDefaultCurrency() Currency {
	list := s.AvailableCurrencies()

	configured, _ := s.settings.GetValue(models.SettingDefaultCurrency)
	configured = strings.ToUpper(strings.TrimSpace(configured))

	for _, cur := range list {
		if cur.Code == configured {
			return cur
		}
	}
	for _, cur := range list {
		if cur.Code == "EUR" {
			return cur
		}
	}
	return list[0]
}

// SetDefaultCurrency validates and persists the active currency code.
func (s *CurrencyService) SetDefaultCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !utils.ValidateCurrencyCode(code) {
		return Currency{}, ErrInvalidCurrencyCode
	}
	if err := s.settings.SetValue(models.SettingDefaultCurrency, code); err != nil {
		return Currency{}, err
	}
	return currencyForCode(code), nil
}

// FormatAmount renders an amount for display. In token mode the unit is an
// abstract credit count; in currency mode the active currency's symbol and
// code frame the value. Stored values are never converted.
func (s *CurrencyService) FormatAmount(amount float64) string {
	mode, _ := s.settings.GetValue(models.SettingCreditsMode)
	if mode == models.CreditsModeToken {
		return fmt.Sprintf("%.2f Credits", amount)
	}
	cur := s.ResolveDefaultCurrency()
	return fmt.Sprintf("%s %.2f (%s)", cur.Symbol, amount, cur.Code)
}

// BillingSettings returns the current display settings with defaults applied.
func (s *CurrencyService) BillingSettings() models.BillingSettings {
	settings := models.BillingSettings{
		CreditsMode:       models.CreditsModeCurrency,
		TokensPerCurrency: 1,
	}
	if mode, _ := s.settings.GetValue(models.SettingCreditsMode); mode != "" {
		settings.CreditsMode = mode
	}
	if raw, _ := s.settings.GetValue(models.SettingTokensPerCurrency); raw != "" {
		if ratio, err := strconv.ParseFloat(raw, 64); err == nil && ratio > 0 {
			settings.TokensPerCurrency = ratio
		}
	}
	return settings
}

// SaveBillingSettings validates and persists the display settings.
func (s *CurrencyService) SaveBillingSettings(settings models.BillingSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.settings.SetValue(models.SettingCreditsMode, settings.CreditsMode); err != nil {
		return err
	}
	return s.settings.SetValue(models.SettingTokensPerCurrency,
		strconv.FormatFloat(settings.TokensPerCurrency, 'f', -1, 64))
}

func currencyForCode(code string) Currency {
	for _, cur := range defaultCurrencies {
		if cur.Code == code {
			return cur
		}
	}
	// Unknown but well-formed codes are displayed with the code as symbol.
	return Currency{Code: code, Symbol: code, Name: code}
}
