// controllers/admin_invoice.go
package controllers

import (
	"net/http"

	"billing-backend/config"
	"billing-backend/services"
	"billing-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminCreateInvoiceInput wraps the invoice fields with the target user.
type AdminCreateInvoiceInput struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	services.CreateInvoiceInput
}

// CreateInvoice creates an invoice for a user. Users without a billing
// profile cannot be invoiced; that precondition lives here, not in the store.
func CreateInvoice(c *gin.Context) {
	var input AdminCreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", "Invalid input: "+err.Error())
		return
	}

	profiles := services.NewProfileService(config.DB)
	profile, err := profiles.GetByUser(input.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if profile == nil {
		respondServiceError(c, services.ErrMissingBillingProfile)
		return
	}

	invoiceSvc := services.NewInvoiceService(config.DB)
	invoice, err := invoiceSvc.Create(input.UserID, input.CreateInvoiceInput)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoice returns any user's invoice with its items.
func GetInvoice(c *gin.Context) {
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoiceSvc := services.NewInvoiceService(config.DB)
	invoice, err := invoiceSvc.Get(invoiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice patches invoice fields; tax-rate changes recompute totals.
func UpdateInvoice(c *gin.Context) {
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", "Invalid input: "+err.Error())
		return
	}

	invoiceSvc := services.NewInvoiceService(config.DB)
	invoice, err := invoiceSvc.Update(invoiceID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice and, via the FK cascade, its items.
func DeleteInvoice(c *gin.Context) {
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoiceSvc := services.NewInvoiceService(config.DB)
	if err := invoiceSvc.Delete(invoiceID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// AddInvoiceItem appends a line item and returns it; totals are recomputed.
func AddInvoiceItem(c *gin.Context) {
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input services.InvoiceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", "Invalid input: "+err.Error())
		return
	}

	invoiceSvc := services.NewInvoiceService(config.DB)
	item, err := invoiceSvc.AddItem(invoiceID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateInvoiceItem replaces a line item's fields; totals are recomputed.
func UpdateInvoiceItem(c *gin.Context) {
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	var input services.InvoiceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", "Invalid input: "+err.Error())
		return
	}

	invoiceSvc := services.NewInvoiceService(config.DB)
	item, err := invoiceSvc.UpdateItem(invoiceID, itemID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteInvoiceItem removes a line item; totals are recomputed.
func DeleteInvoiceItem(c *gin.Context) {
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	invoiceSvc := services.NewInvoiceService(config.DB)
	if err := invoiceSvc.DeleteItem(invoiceID, itemID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice item deleted successfully"})
}
