package services

import (
	"testing"

	"billing-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmountCurrencyMode(t *testing.T) {
	svc := NewCurrencyService(fakeSettings{
		models.SettingDefaultCurrency: "EUR",
		models.SettingCreditsMode:     models.CreditsModeCurrency,
	})

	assert.Equal(t, "€ 10.50 (EUR)", svc.FormatAmount(10.5))
}

func TestFormatAmountTokenMode(t *testing.T) {
	svc := NewCurrencyService(fakeSettings{
		models.SettingCreditsMode: models.CreditsModeToken,
	})

	assert.Equal(t, "10.50 Credits", svc.FormatAmount(10.5))
}

func TestFormatAmountReadsModeFresh(t *testing.T) {
	settings := fakeSettings{models.SettingDefaultCurrency: "USD"}
	svc := NewCurrencyService(settings)

	assert.Equal(t, "$ 1.00 (USD)", svc.FormatAmount(1))

	// an administrative mode change applies to the very next call
	settings[models.SettingCreditsMode] = models.CreditsModeToken
	assert.Equal(t, "1.00 Credits", svc.FormatAmount(1))
}

func TestResolveDefaultCurrency(t *testing.T) {
	t.Run("configured default wins", func(t *testing.T) {
		svc := NewCurrencyService(fakeSettings{models.SettingDefaultCurrency: "USD"})
		assert.Equal(t, "USD", svc.ResolveDefaultCurrency().Code)
	})

	t.Run("falls back to EUR", func(t *testing.T) {
		svc := NewCurrencyService(fakeSettings{models.SettingDefaultCurrency: "XXX"})
		// XXX is well-formed but not in the built-in list
		assert.Equal(t, "EUR", svc.ResolveDefaultCurrency().Code)
	})

	t.Run("falls back to first entry without EUR", func(t *testing.T) {
		svc := NewCurrencyService(fakeSettings{models.SettingCurrencies: "USD,GBP"})
		assert.Equal(t, "USD", svc.ResolveDefaultCurrency().Code)
	})
}

func TestAvailableCurrenciesOverrideList(t *testing.T) {
	svc := NewCurrencyService(fakeSettings{models.SettingCurrencies: "usd, GBP ,nope!,CHF"})

	list := svc.AvailableCurrencies()
	codes := make([]string, 0, len(list))
	for _, cur := range list {
		codes = append(codes, cur.Code)
	}
	// malformed entries are dropped, the rest normalized to upper case
	assert.Equal(t, []string{"USD", "GBP", "CHF"}, codes)
}

func TestAvailableCurrenciesFallsBackToBuiltins(t *testing.T) {
	svc := NewCurrencyService(fakeSettings{models.SettingCurrencies: "x,y,z"})
	assert.Equal(t, defaultCurrencies, svc.AvailableCurrencies())

	svc = NewCurrencyService(fakeSettings{})
	assert.Equal(t, defaultCurrencies, svc.AvailableCurrencies())
}

func TestSetDefaultCurrencyValidatesCode(t *testing.T) {
	settings := fakeSettings{}
	svc := NewCurrencyService(settings)

	_, err := svc.SetDefaultCurrency("eu")
	assert.ErrorIs(t, err, ErrInvalidCurrencyCode)

	cur, err := svc.SetDefaultCurrency("gbp")
	require.NoError(t, err)
	assert.Equal(t, "GBP", cur.Code)
	assert.Equal(t, "GBP", settings[models.SettingDefaultCurrency])
}

func TestBillingSettingsDefaults(t *testing.T) {
	svc := NewCurrencyService(fakeSettings{})

	settings := svc.BillingSettings()
	assert.Equal(t, models.CreditsModeCurrency, settings.CreditsMode)
	assert.Equal(t, 1.0, settings.TokensPerCurrency)
}

func TestSaveBillingSettingsValidates(t *testing.T) {
	store := fakeSettings{}
	svc := NewCurrencyService(store)

	err := svc.SaveBillingSettings(models.BillingSettings{CreditsMode: "points", TokensPerCurrency: 1})
	assert.Error(t, err)

	err = svc.SaveBillingSettings(models.BillingSettings{CreditsMode: models.CreditsModeToken, TokensPerCurrency: 0.5})
	require.NoError(t, err)
	assert.Equal(t, models.CreditsModeToken, store[models.SettingCreditsMode])
	assert.Equal(t, "0.5", store[models.SettingTokensPerCurrency])
}

func TestSettingsStoreRoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := NewSettingsStore(db)

	value, err := store.GetValue("never_set")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.SetValue(models.SettingDefaultCurrency, "CHF"))
	require.NoError(t, store.SetValue(models.SettingDefaultCurrency, "PLN"))

	value, err = store.GetValue(models.SettingDefaultCurrency)
	require.NoError(t, err)
	assert.Equal(t, "PLN", value)
}
