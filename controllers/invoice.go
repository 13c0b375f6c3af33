// controllers/invoice.go
package controllers

import (
	"net/http"

	"billing-backend/config"
	"billing-backend/models"
	"billing-backend/services"
	"billing-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetMyInvoices returns one page of the caller's invoices with display
// amounts, optionally filtered by status.
func GetMyInvoices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status != "" && !models.ValidInvoiceStatus(status) {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_status", "Unknown invoice status: "+status)
		return
	}
	p := utils.ParsePagination(c)

	invoiceSvc := services.NewInvoiceService(config.DB)
	invoices, total, err := invoiceSvc.ListByUser(userID, status, p)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	currency := services.NewCurrencyService(services.NewSettingsStore(config.DB))
	list := make([]gin.H, 0, len(invoices))
	for _, inv := range invoices {
		list = append(list, gin.H{
			"id":              inv.ID,
			"invoice_number":  inv.InvoiceNumber,
			"status":          inv.Status,
			"subtotal":        inv.Subtotal,
			"tax_rate":        inv.TaxRate,
			"tax_amount":      inv.TaxAmount,
			"total":           inv.Total,
			"total_formatted": currency.FormatAmount(inv.Total),
			"due_date":        inv.DueDate,
			"paid_at":         inv.PaidAt,
			"created_at":      inv.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices":    list,
		"total":       total,
		"page":        p.Page,
		"limit":       p.Limit,
		"total_pages": utils.TotalPages(total, p.Limit),
	})
}

// GetMyInvoice returns one invoice with its items plus the customer and
// issuer billing blocks. Invoices owned by other users read as not found.
func GetMyInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoiceSvc := services.NewInvoiceService(config.DB)
	invoice, err := invoiceSvc.GetByUser(userID, invoiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	profiles := services.NewProfileService(config.DB)
	profile, err := profiles.GetByUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	settings := services.NewSettingsStore(config.DB)
	companyName, _ := settings.GetValue(models.SettingCompanyName)
	companyAddress, _ := settings.GetValue(models.SettingCompanyAddress)
	companyVatID, _ := settings.GetValue(models.SettingCompanyVatID)

	currency := services.NewCurrencyService(settings)
	c.JSON(http.StatusOK, gin.H{
		"invoice":         invoice,
		"total_formatted": currency.FormatAmount(invoice.Total),
		"customer":        profile,
		"issuer": gin.H{
			"company_name":    companyName,
			"company_address": companyAddress,
			"vat_id":          companyVatID,
		},
	})
}
