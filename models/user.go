package models

// User represents a registered account in the directory.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// Identifiers are assigned sequentially in registration order and are
	// never reused. Not exposed via JSON; used only inside the server.
	ID int64 `json:"-"`

	// FullName is the display name of the user. Always non-empty.
	FullName string `json:"fullName"`

	// Email is the unique address the user registers and logs in with.
	// Uniqueness is enforced with an exact, case-sensitive comparison.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The plain-text password is never stored or logged.
	PasswordHash string `json:"-"`

	// Bio is an optional free-form description. May be empty.
	Bio string `json:"bio"`

	// Dob is the user's date of birth in YYYY-MM-DD form.
	// It is validated on input but stored as the text the user supplied.
	Dob string `json:"dob"`
}

// PublicUser is the outward-facing projection of a User record.
// It deliberately omits the identifier and the password hash.
type PublicUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Dob      string `json:"dob"`
}

// Public returns the projection of u that is safe to return to callers.
func (u User) Public() PublicUser {
	return PublicUser{
		FullName: u.FullName,
		Email:    u.Email,
		Bio:      u.Bio,
		Dob:      u.Dob,
	}
}
