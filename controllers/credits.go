// controllers/credits.go
package controllers

import (
	"net/http"

	"billing-backend/config"
	"billing-backend/services"

	"github.com/gin-gonic/gin"
)

// GetCredits returns the caller's current credit balance together with its
// display form in the active currency or token mode.
func GetCredits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ledger := services.NewLedgerService(config.DB)
	credits, err := ledger.GetBalance(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	currency := services.NewCurrencyService(services.NewSettingsStore(config.DB))
	c.JSON(http.StatusOK, gin.H{
		"credits":           credits,
		"credits_formatted": currency.FormatAmount(float64(credits)),
		"currency":          currency.ResolveDefaultCurrency(),
	})
}
