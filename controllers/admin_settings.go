// controllers/admin_settings.go
package controllers

import (
	"errors"
	"net/http"

	"billing-backend/config"
	"billing-backend/services"
	"billing-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type UpdateCurrencyInput struct {
	DefaultCurrency string `json:"default_currency" binding:"required"`
}

type UpdateSettingsInput struct {
	CreditsMode       *string  `json:"credits_mode" binding:"omitempty,oneof=currency token"`
	TokensPerCurrency *float64 `json:"tokens_per_currency" binding:"omitempty,gt=0"`
}

// GetCurrencySettings returns the active currency and the resolved list.
func GetCurrencySettings(c *gin.Context) {
	currency := services.NewCurrencyService(services.NewSettingsStore(config.DB))
	c.JSON(http.StatusOK, gin.H{
		"default":    currency.ResolveDefaultCurrency(),
		"currencies": currency.AvailableCurrencies(),
	})
}

// UpdateCurrencySettings sets the active currency code.
func UpdateCurrencySettings(c *gin.Context) {
	var input UpdateCurrencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", "Invalid input: "+err.Error())
		return
	}

	currency := services.NewCurrencyService(services.NewSettingsStore(config.DB))
	cur, err := currency.SetDefaultCurrency(input.DefaultCurrency)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"default": cur})
}

// GetSettings returns the credits display settings.
func GetSettings(c *gin.Context) {
	currency := services.NewCurrencyService(services.NewSettingsStore(config.DB))
	c.JSON(http.StatusOK, currency.BillingSettings())
}

// UpdateSettings patches the credits display mode and label ratio.
func UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", "Invalid input: "+err.Error())
		return
	}

	currency := services.NewCurrencyService(services.NewSettingsStore(config.DB))
	settings := currency.BillingSettings()
	if input.CreditsMode != nil {
		settings.CreditsMode = *input.CreditsMode
	}
	if input.TokensPerCurrency != nil {
		settings.TokensPerCurrency = *input.TokensPerCurrency
	}

	if err := currency.SaveBillingSettings(settings); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
