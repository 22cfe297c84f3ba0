package models

// RegisterRequest is the JSON body accepted by POST /auth/register.
type RegisterRequest struct {
	// FullName is the display name of the new user. Required.
	FullName string `json:"fullName"`

	// Email is the address the account is registered under. Required,
	// must be syntactically valid and not already registered.
	Email string `json:"email"`

	// Password is the plain-text password. Required, minimum 8 characters
	// with at least one symbol. Hashed immediately; never stored as-is.
	Password string `json:"password"`

	// Bio is an optional free-form description.
	Bio string `json:"bio"`

	// Dob is the date of birth in YYYY-MM-DD form. Required.
	Dob string `json:"dob"`
}

// LoginRequest is the JSON body accepted by POST /auth/login.
type LoginRequest struct {
	// Email identifies the account to authenticate. Required.
	Email string `json:"email"`

	// Password is the plain-text password to verify. Required, and must
	// satisfy the same strength rule as at registration time.
	Password string `json:"password"`
}
