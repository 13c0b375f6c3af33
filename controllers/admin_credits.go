// controllers/admin_credits.go
package controllers

import (
	"fmt"
	"net/http"

	"billing-backend/config"
	"billing-backend/services"
	"billing-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdjustCreditsInput requires a strictly positive amount.
type AdjustCreditsInput struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// SetCreditsInput accepts zero, so the pointer distinguishes a missing field.
type SetCreditsInput struct {
	Amount *int64 `json:"amount" binding:"required"`
}

// AddUserCredits credits a user's balance and reports the new value.
func AddUserCredits(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input AdjustCreditsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_amount", "Amount must be a positive integer")
		return
	}

	ledger := services.NewLedgerService(config.DB)
	if err := ledger.AddCredits(userID, input.Amount); err != nil {
		respondServiceError(c, err)
		return
	}
	newBalance, err := ledger.GetBalance(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.NewAuditLogger().Record(actorID, "credits.add",
		fmt.Sprintf("Added %d credits to user %s (new balance %d)", input.Amount, userID, newBalance),
		c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"credits": newBalance})
}

// RemoveUserCredits debits a user's balance. The balance pre-check is a UX
// fast path only; the ledger's in-transaction check is authoritative.
func RemoveUserCredits(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input AdjustCreditsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_amount", "Amount must be a positive integer")
		return
	}

	ledger := services.NewLedgerService(config.DB)
	oldBalance, err := ledger.GetBalance(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if oldBalance < input.Amount {
		respondServiceError(c, services.ErrInsufficientCredits)
		return
	}

	if err := ledger.RemoveCredits(userID, input.Amount); err != nil {
		respondServiceError(c, err)
		return
	}
	newBalance, err := ledger.GetBalance(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.NewAuditLogger().Record(actorID, "credits.remove",
		fmt.Sprintf("Removed %d credits from user %s (balance %d -> %d)", input.Amount, userID, oldBalance, newBalance),
		c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"old_credits": oldBalance, "credits": newBalance})
}

// SetUserCredits overwrites a user's balance with an exact value.
func SetUserCredits(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input SetCreditsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_amount", "Amount is required")
		return
	}

	ledger := services.NewLedgerService(config.DB)
	oldBalance, err := ledger.GetBalance(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := ledger.SetBalance(userID, *input.Amount); err != nil {
		respondServiceError(c, err)
		return
	}

	services.NewAuditLogger().Record(actorID, "credits.set",
		fmt.Sprintf("Set credits of user %s to %d (was %d)", userID, *input.Amount, oldBalance),
		c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"old_credits": oldBalance, "credits": *input.Amount})
}
