// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the structured error envelope every failure mode
// maps to: a machine-readable code plus a human-readable message.
func RespondWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
