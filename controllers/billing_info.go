// controllers/billing_info.go
package controllers

import (
	"net/http"

	"billing-backend/config"
	"billing-backend/services"
	"billing-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetBillingInfo returns the caller's billing profile, or an all-null default
// when none has been saved yet.
func GetBillingInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profiles := services.NewProfileService(config.DB)
	profile, err := profiles.GetByUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if profile == nil {
		c.JSON(http.StatusOK, gin.H{
			"full_name":     nil,
			"company_name":  nil,
			"address_line1": nil,
			"address_line2": nil,
			"city":          nil,
			"state":         nil,
			"postal_code":   nil,
			"country_code":  nil,
			"vat_id":        nil,
			"phone":         nil,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateBillingInfo creates or patches the caller's billing profile. The
// completeness requirement only applies to the first creation.
func UpdateBillingInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid_input", "Invalid phone number format")
		return
	}

	profiles := services.NewProfileService(config.DB)
	profile, err := profiles.CreateOrUpdate(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
