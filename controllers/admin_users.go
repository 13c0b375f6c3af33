// controllers/admin_users.go
package controllers

import (
	"net/http"
	"strings"

	"billing-backend/config"
	"billing-backend/models"
	"billing-backend/services"
	"billing-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUsers lists panel users with their credit balances. Users without a
// balance row show zero credits; the row is only materialized on demand.
func GetUsers(c *gin.Context) {
	p := utils.ParsePagination(c)
	search := strings.TrimSpace(c.Query("search"))

	query := config.DB.Model(&models.User{})
	if search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", needle, needle)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error", "Database error")
		return
	}

	var users []models.User
	if err := query.Order("created_at ASC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error", "Database error")
		return
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	credits := make(map[uuid.UUID]int64, len(users))
	if len(ids) > 0 {
		var balances []models.UserBalance
		if err := config.DB.Where("user_id IN ?", ids).Find(&balances).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "internal_error", "Database error")
			return
		}
		for _, b := range balances {
			credits[b.UserID] = b.Credits
		}
	}

	currency := services.NewCurrencyService(services.NewSettingsStore(config.DB))
	list := make([]gin.H, 0, len(users))
	for _, u := range users {
		balance := credits[u.ID]
		list = append(list, gin.H{
			"id":                u.ID,
			"email":             u.Email,
			"name":              u.Name,
			"is_active":         u.IsActive,
			"credits":           balance,
			"credits_formatted": currency.FormatAmount(float64(balance)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       list,
		"total":       total,
		"page":        p.Page,
		"limit":       p.Limit,
		"total_pages": utils.TotalPages(total, p.Limit),
	})
}
