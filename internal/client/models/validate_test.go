package models

import (
	"testing"

	"github.com/dmitrijs2005/emergency15/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegister() RegisterInput {
	return RegisterInput{
		FirstName:            "Ali",
		LastName:             "Khan",
		Email:                "ali@example.com",
		Password:             "secret",
		PasswordConfirmation: "secret",
		ContactNumber:        "03001234567",
		CNIC:                 "3520212345678",
	}
}

func TestCheck_Register(t *testing.T) {
	require.NoError(t, Check(validRegister()))

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		field  string
	}{
		{"non alphabetic first name", func(r *RegisterInput) { r.FirstName = "Ali1" }, "first_name"},
		{"empty last name", func(r *RegisterInput) { r.LastName = "" }, "last_name"},
		{"bad email", func(r *RegisterInput) { r.Email = "nope" }, "email"},
		{"short contact", func(r *RegisterInput) { r.ContactNumber = "0300" }, "contact_number"},
		{"short cnic", func(r *RegisterInput) { r.CNIC = "123" }, "cnic"},
		{"confirmation mismatch", func(r *RegisterInput) { r.PasswordConfirmation = "other" }, "password_confirmation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegister()
			tt.mutate(&in)

			err := Check(in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Contains(t, err.Error(), tt.field)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestCheck_OTPAndReset(t *testing.T) {
	require.Error(t, Check(VerificationInput{Token: "12", UserID: 1}))
	require.Error(t, Check(VerificationInput{Token: "1234"}))
	require.NoError(t, Check(VerificationInput{Token: "1234", UserID: 1}))

	r := ResetPasswordInput{Token: "1234", ContactNumber: "03001234567", Password: "a", PasswordConfirmation: "b"}
	err := Check(r)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must match password", verr.Fields["password_confirmation"])
}

func TestCheck_User(t *testing.T) {
	require.Error(t, Check(User{ID: 1, ContactNumber: "0300"}))
	require.Error(t, Check(User{Token: "t", ContactNumber: "0300"}))
	require.NoError(t, Check(User{Token: "t", ID: 1, ContactNumber: "0300"}))
}

func TestCheck_ProfilePatch(t *testing.T) {
	require.NoError(t, Check(ProfilePatch{}))
	require.Error(t, Check(ProfilePatch{Email: strPtr("bad")}))
	require.Error(t, Check(ProfilePatch{FirstName: strPtr("")}))
	require.NoError(t, Check(ProfilePatch{FirstName: strPtr("Ali")}))
}

func TestCheck_Lead(t *testing.T) {
	require.NoError(t, Check(NewLeadInput(33.6844, 73.0479)))
	require.Error(t, Check(LeadInput{Lat: "", Lng: "73"}))
	require.Error(t, Check(LeadInput{Lat: "123", Lng: "73"}))
}
