package services

import (
	"errors"
	"strings"

	"billing-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileInput carries the writable billing-profile fields. Pointers
// distinguish "not supplied" from "set to empty".
type ProfileInput struct {
	FullName     *string `json:"full_name"`
	CompanyName  *string `json:"company_name"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postal_code"`
	CountryCode  *string `json:"country_code"`
	VatID        *string `json:"vat_id"`
	Phone        *string `json:"phone"`
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetByUser returns the user's billing profile, or nil when none exists.
func (s *ProfileService) GetByUser(userID uuid.UUID) (*models.BillingProfile, error) {
	var profile models.BillingProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// CreateOrUpdate upserts the user's billing profile. The first creation
// requires full_name, address_line1, city, postal_code and country_code to be
// non-empty; updates accept any subset so individual fields can be patched
// later without re-supplying the rest.
func (s *ProfileService) CreateOrUpdate(userID uuid.UUID, input ProfileInput) (*models.BillingProfile, error) {
	existing, err := s.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := models.BillingProfile{UserID: userID}
		applyProfileInput(&profile, input)
		if profile.FullName == "" || profile.AddressLine1 == "" ||
			profile.City == "" || profile.PostalCode == "" || profile.CountryCode == "" {
			return nil, ErrIncompleteProfile
		}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}

	applyProfileInput(existing, input)
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func applyProfileInput(profile *models.BillingProfile, input ProfileInput) {
	if input.FullName != nil {
		profile.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.CompanyName != nil {
		profile.CompanyName = strings.TrimSpace(*input.CompanyName)
	}
	if input.AddressLine1 != nil {
		profile.AddressLine1 = strings.TrimSpace(*input.AddressLine1)
	}
	if input.AddressLine2 != nil {
		profile.AddressLine2 = strings.TrimSpace(*input.AddressLine2)
	}
	if input.City != nil {
		profile.City = strings.TrimSpace(*input.City)
	}
	if input.State != nil {
		profile.State = strings.TrimSpace(*input.State)
	}
	if input.PostalCode != nil {
		profile.PostalCode = strings.TrimSpace(*input.PostalCode)
	}
	if input.CountryCode != nil {
		profile.CountryCode = strings.ToUpper(strings.TrimSpace(*input.CountryCode))
	}
	if input.VatID != nil {
		profile.VatID = strings.TrimSpace(*input.VatID)
	}
	if input.Phone != nil {
		profile.Phone = strings.TrimSpace(*input.Phone)
	}
}
