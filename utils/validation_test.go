package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCurrencyCode(t *testing.T) {
	assert.True(t, ValidateCurrencyCode("EUR"))
	assert.True(t, ValidateCurrencyCode("USD"))

	assert.False(t, ValidateCurrencyCode("eur"))
	assert.False(t, ValidateCurrencyCode("EURO"))
	assert.False(t, ValidateCurrencyCode("EU"))
	assert.False(t, ValidateCurrencyCode(""))
	assert.False(t, ValidateCurrencyCode("E1R"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+4915112345678"))
	assert.True(t, ValidatePhone("+1 (555) 123-4567"))

	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("not a phone"))
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(6)
	b := GenerateRandomString(6)

	assert.Len(t, a, 6)
	assert.Len(t, b, 6)
	assert.NotEqual(t, a, b)
}
