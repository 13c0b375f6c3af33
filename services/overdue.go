// services/overdue.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"billing-backend/models"
	"billing-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// OverdueService flips pending invoices past their due date to overdue and
// sends a payment reminder to users who left a phone number on their billing
// profile. Reminders are skipped when Twilio credentials are not configured.
type OverdueService struct {
	db       *gorm.DB
	currency *CurrencyService
	client   *twilio.RestClient
}

func NewOverdueService(db *gorm.DB) *OverdueService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &OverdueService{
		db:       db,
		currency: NewCurrencyService(NewSettingsStore(db)),
		client:   client,
	}
}

func (s *OverdueService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.ProcessOverdueInvoices)

	c.Start()
	log.Println("Overdue invoice scheduler started")
}

// ProcessOverdueInvoices marks every pending invoice whose due date has
// passed as overdue, then notifies the affected users.
func (s *OverdueService) ProcessOverdueInvoices() {
	log.Println("Starting overdue invoice sweep...")

	cutoff := utils.BeginningOfDay(time.Now())

	var invoices []models.Invoice
	if err := s.db.Where("status = ? AND due_date IS NOT NULL AND due_date < ?",
		models.InvoiceStatusPending, cutoff).Find(&invoices).Error; err != nil {
		log.Printf("Failed to fetch pending invoices: %v", err)
		return
	}

	for _, invoice := range invoices {
		if err := s.db.Model(&models.Invoice{}).Where("id = ?", invoice.ID).
			Update("status", models.InvoiceStatusOverdue).Error; err != nil {
			log.Printf("Invoice %s: failed to mark overdue: %v", invoice.InvoiceNumber, err)
			continue
		}
		s.sendPaymentReminder(invoice)
	}

	log.Printf("Overdue invoice sweep completed, %d invoices processed", len(invoices))
}

func (s *OverdueService) sendPaymentReminder(invoice models.Invoice) {
	if s.client == nil {
		return
	}

	var profile models.BillingProfile
	if err := s.db.Where("user_id = ?", invoice.UserID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Invoice %s: failed to load billing profile: %v", invoice.InvoiceNumber, err)
		}
		return
	}
	if profile.Phone == "" {
		return
	}

	message := fmt.Sprintf("Invoice %s over %s is now overdue. Please settle it in your control panel.",
		invoice.InvoiceNumber, s.currency.FormatAmount(invoice.Total))

	// WhatsApp when the phone is in E.164 format, plain SMS otherwise
	channel := "sms"
	to := profile.Phone
	if strings.HasPrefix(profile.Phone, "+") {
		to = "whatsapp:" + profile.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder for invoice %s: %v", invoice.InvoiceNumber, err)
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for invoice %s, SID: %s", invoice.InvoiceNumber, *resp.Sid)
	} else {
		log.Printf("Reminder sent for invoice %s, but no SID returned", invoice.InvoiceNumber)
	}
}
