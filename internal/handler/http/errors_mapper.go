package http

import (
	"errors"
	"net/http"

	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/internal/service"
	"github.com/apryandito/user-directory/internal/store"
	"github.com/apryandito/user-directory/internal/utils"
	"github.com/apryandito/user-directory/internal/validators"
	"github.com/apryandito/user-directory/models"
)

// Response messages shared by all handlers. The client contract keys on the
// HTTP status code; these strings are human-readable only.
const (
	msgValidationError = "Validation error"
	msgEmailTaken      = "Email already registered."
	msgLoginFailed     = "Login failed"
	msgUserNotFound    = "User Not Found"
	msgUnauthorized    = "Unauthorized"
	msgInternalError   = "Internal Server Error"
	msgRegisterSuccess = "Registration success"
	msgSuccess         = "Success"
)

var errorStatusMap = map[error]int{
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrNoUsersRegistered:  http.StatusNotFound,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	store.ErrEmailAlreadyExists: msgEmailTaken,
	store.ErrUserNotFound:       msgUserNotFound,
	store.ErrNoUsersRegistered:  msgUserNotFound,

	service.ErrInvalidCredentials:      msgLoginFailed,
	service.ErrTokenIsExpiredOrInvalid: msgUnauthorized,
	service.ErrTokenCreationFailed:     msgInternalError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgInternalError
}

// writeError translates a service or store error into the JSON error envelope
// and the matching HTTP status code.
//
// A *validators.ValidationError becomes a 400 response whose detail field
// lists every failing field. Every other error is resolved through the
// sentinel maps above; unmatched errors collapse to a generic 500 so that
// internal failure details never leak to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Err(err).Msg("request failed validation")
		utils.WriteJSON(w, models.Response{
			Message: msgValidationError,
			Detail:  validationErr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error while handling request")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.Response{Message: messageFromError(err)}, status)
}
