package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstCreateRequiresMandatoryFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	input := ProfileInput{
		FullName:     strPtr("Jane Doe"),
		AddressLine1: strPtr("1 Main St"),
		City:         strPtr("Berlin"),
		CountryCode:  strPtr("de"),
		// postal_code missing
	}
	_, err := svc.CreateOrUpdate(user.ID, input)
	assert.ErrorIs(t, err, ErrIncompleteProfile)

	// nothing was persisted
	profile, err := svc.GetByUser(user.ID)
	require.NoError(t, err)
	assert.Nil(t, profile)

	// the same call succeeds once postal_code is supplied
	input.PostalCode = strPtr("10115")
	profile, err = svc.CreateOrUpdate(user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "DE", profile.CountryCode)
}

func TestUpdateAcceptsPartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	_, err := svc.CreateOrUpdate(user.ID, ProfileInput{
		FullName:     strPtr("Jane Doe"),
		AddressLine1: strPtr("1 Main St"),
		City:         strPtr("Berlin"),
		PostalCode:   strPtr("10115"),
		CountryCode:  strPtr("DE"),
	})
	require.NoError(t, err)

	// a later update may patch a single field without re-supplying the rest
	profile, err := svc.CreateOrUpdate(user.ID, ProfileInput{Phone: strPtr("+4915112345678")})
	require.NoError(t, err)
	assert.Equal(t, "+4915112345678", profile.Phone)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "10115", profile.PostalCode)
}

func TestProfileFieldsAreTrimmedAndNormalized(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	profile, err := svc.CreateOrUpdate(user.ID, ProfileInput{
		FullName:     strPtr("  Jane Doe  "),
		CompanyName:  strPtr(" ACME GmbH "),
		AddressLine1: strPtr(" 1 Main St "),
		City:         strPtr(" Berlin "),
		PostalCode:   strPtr(" 10115 "),
		CountryCode:  strPtr(" de "),
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "ACME GmbH", profile.CompanyName)
	assert.Equal(t, "DE", profile.CountryCode)
	assert.Equal(t, "10115", profile.PostalCode)
}

func TestGetByUserWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	profile, err := svc.GetByUser(user.ID)
	require.NoError(t, err)
	assert.Nil(t, profile)
}
