package models

// LoginInput is the login form.
type LoginInput struct {
	ContactNumber string `json:"contact_number" validate:"min=11"`
	Password      string `json:"password" validate:"required"`
}

// RegisterInput is the registration form.
type RegisterInput struct {
	FirstName            string `json:"first_name" validate:"required,alpha"`
	LastName             string `json:"last_name" validate:"required,alpha"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	ContactNumber        string `json:"contact_number" validate:"min=11"`
	CNIC                 string `json:"cnic" validate:"min=13"`
}

// VerificationInput confirms a registration with the OTP sent by SMS.
type VerificationInput struct {
	Token  string `json:"token" validate:"min=4"`
	UserID int64  `json:"user_id" validate:"gt=0"`
}

type ForgetPasswordInput struct {
	ContactNumber string `json:"contact_number" validate:"min=11"`
}

type ResetPasswordInput struct {
	Token                string `json:"token" validate:"min=4"`
	ContactNumber        string `json:"contact_number" validate:"min=11"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// ProfileInput is the update_user request body. The backend expects the
// full profile, not a diff.
type ProfileInput struct {
	FirstName     string `json:"first_name" validate:"required,alpha"`
	LastName      string `json:"last_name" validate:"required,alpha"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contact_number" validate:"min=11"`
	CNIC          string `json:"cnic" validate:"min=13"`
}

// Patch converts the submitted form into the session patch applied after
// a successful update.
func (p ProfileInput) Patch() ProfilePatch {
	first, last, email, cnic := p.FirstName, p.LastName, p.Email, p.CNIC
	return ProfilePatch{FirstName: &first, LastName: &last, Email: &email, CNIC: &cnic}
}

// ProfileInputFrom prefills the profile form from the current user.
func ProfileInputFrom(u User) ProfileInput {
	in := ProfileInput{
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		ContactNumber: u.ContactNumber,
	}
	if u.CNIC != nil {
		in.CNIC = *u.CNIC
	}
	return in
}

// UserDetails is the user part of the login response.
type UserDetails struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	CNIC          *string    `json:"cnic"`
	Email         string     `json:"email"`
	IsActive      FlexString `json:"is_active"`
	SuperAdmin    FlexString `json:"super_admin"`
	Username      *string    `json:"username"`
	ContactNumber string     `json:"contact_number"`
}

// LoginData is the data payload of a successful login.
type LoginData struct {
	Token       string      `json:"token"`
	UserDetails UserDetails `json:"user_details"`
}

// User flattens the login payload into the persisted user record.
func (d LoginData) User() User {
	ud := d.UserDetails
	return User{
		Token:         d.Token,
		ID:            ud.ID,
		FirstName:     ud.FirstName,
		LastName:      ud.LastName,
		CNIC:          ud.CNIC,
		Email:         ud.Email,
		IsActive:      ud.IsActive,
		SuperAdmin:    ud.SuperAdmin,
		Username:      ud.Username,
		ContactNumber: ud.ContactNumber,
	}
}

// RegisterData is the data payload of register.
type RegisterData struct {
	UserID int64 `json:"user_id"`
}

// ForgetPasswordData is the data payload of forget-password.
type ForgetPasswordData struct {
	ContactNumber string `json:"contact_number"`
}
