package validators

import (
	"context"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/apryandito/user-directory/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
// Each value matches the JSON name of the field it targets.
const (
	// FieldFullName targets the display name of a registration request.
	FieldFullName = "fullName"

	// FieldEmail targets the email address of a registration or login request.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a registration or
	// login request. Registration and login share this one rule.
	FieldPassword = "password"

	// FieldDob targets the date-of-birth field of a registration request.
	FieldDob = "dob"

	// FieldUserID targets the numeric userId path parameter.
	FieldUserID = "userId"
)

// dobLayout is the only accepted date-of-birth format.
const dobLayout = "2006-01-02"

var (
	// emailPattern accepts the conventional local@domain.tld shape without
	// attempting full RFC 5322 coverage.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// symbolPattern matches any character outside the alphanumeric ranges,
	// which is the password-strength criterion.
	symbolPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

	// numericPattern matches non-empty, digits-only text.
	numericPattern = regexp.MustCompile(`^[0-9]+$`)
)

// minPasswordLength is the minimum accepted password length, counted in
// characters rather than bytes so multibyte passwords are measured the way
// users see them.
const minPasswordLength = 8

// UserValidator implements the Validator interface for the directory's
// request models: RegisterRequest, LoginRequest, and the raw userId path
// parameter (passed as a plain string).
//
// Unlike single-error validators, UserValidator accumulates every failing
// rule and returns them together as a *ValidationError, because the response
// contract enumerates all failing fields at once.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - string (interpreted as the userId path parameter)
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// the full field set of the request type is validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case string:
		return v.validateUserIDParam(ctx, value)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest validates a full registration request.
//
// Default validated fields (when none specified):
// FullName, Email, Password, Dob. Bio is optional and has no rule.
//
// All failing rules are accumulated; the request is rejected as a whole.
func (v *UserValidator) validateRegisterRequest(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPassword, FieldDob}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldFullName:
			if req.FullName == "" {
				verr.add(FieldFullName, "Full name is required")
			}
		case FieldEmail:
			checkEmail(verr, req.Email)
		case FieldPassword:
			checkPassword(verr, req.Password)
		case FieldDob:
			checkDob(verr, req.Dob)
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// validateLoginRequest validates a login request.
//
// Default validated fields: Email, Password. The password strength rule is
// the same one applied at registration time.
func (v *UserValidator) validateLoginRequest(ctx context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			checkEmail(verr, req.Email)
		case FieldPassword:
			checkPassword(verr, req.Password)
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// validateUserIDParam validates the raw userId path parameter, which must be
// non-empty, digits-only text.
func (v *UserValidator) validateUserIDParam(ctx context.Context, param string) error {
	verr := &ValidationError{}
	if !numericPattern.MatchString(param) {
		verr.add(FieldUserID, "User ID must be numeric")
	}
	return verr.orNil()
}

// checkEmail applies the shared email rules: required, conventional syntax.
func checkEmail(verr *ValidationError, email string) {
	if email == "" {
		verr.add(FieldEmail, "Email is required")
		return
	}
	if !emailPattern.MatchString(email) {
		verr.add(FieldEmail, "Email is not valid")
	}
}

// checkPassword applies the shared password-strength rule used by both
// registration and login: required, minimum length, at least one symbol.
// Every failing rule is reported, not just the first.
func checkPassword(verr *ValidationError, password string) {
	if password == "" {
		verr.add(FieldPassword, "Password is required")
		return
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		verr.add(FieldPassword, "Password must be at least 8 characters")
	}
	if !symbolPattern.MatchString(password) {
		verr.add(FieldPassword, "Password must contain at least one symbol")
	}
}

// checkDob applies the date-of-birth rules: required, valid YYYY-MM-DD
// calendar date. The value is stored as text, so only syntax is checked here.
func checkDob(verr *ValidationError, dob string) {
	if dob == "" {
		verr.add(FieldDob, "Date of birth is required")
		return
	}
	if _, err := time.Parse(dobLayout, dob); err != nil {
		verr.add(FieldDob, "Invalid date format (YYYY-MM-DD)")
	}
}
