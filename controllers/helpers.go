// controllers/helpers.go
package controllers

import (
	"errors"
	"net/http"

	"billing-backend/services"
	"billing-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID pulls the authenticated caller's id out of the request
// context. A false return means the response has already been written.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "unauthorized", "User ID not found in context")
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "unauthorized", "Invalid user ID in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error", "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_id", "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses and
// machine-readable codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, services.ErrInsufficientCredits):
		utils.RespondWithError(c, http.StatusBadRequest, "insufficient_credits", err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, services.ErrIncompleteProfile):
		utils.RespondWithError(c, http.StatusBadRequest, "incomplete_profile", err.Error())
	case errors.Is(err, services.ErrDuplicateInvoiceNo):
		utils.RespondWithError(c, http.StatusBadRequest, "duplicate_invoice_number", err.Error())
	case errors.Is(err, services.ErrInvoiceNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "invoice_not_found", err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, services.ErrInvalidCurrencyCode):
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_currency_code", err.Error())
	case errors.Is(err, services.ErrMissingBillingProfile):
		utils.RespondWithError(c, http.StatusBadRequest, "missing_billing_profile", err.Error())
	case errors.Is(err, services.ErrLedgerWrite):
		utils.RespondWithError(c, http.StatusInternalServerError, "ledger_write_failed", "Failed to apply balance change")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error", "Database error")
	}
}
