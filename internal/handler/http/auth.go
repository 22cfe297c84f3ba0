package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/internal/utils"
	"github.com/apryandito/user-directory/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Response{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")

	utils.WriteJSON(w, models.Response{Message: msgRegisterSuccess}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Response{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.Response{Message: msgInternalError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: msgSuccess,
		Data:    models.TokenData{Token: token.SignedString},
	}, http.StatusOK)
}

// me returns the public profile of the authenticated user. The auth
// middleware has already placed the user's ID in the request context.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authorized route")
		utils.WriteJSON(w, models.Response{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.UserService.GetUser(ctx, strconv.FormatInt(userID, 10))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: msgSuccess,
		Data:    foundUser.Public(),
	}, http.StatusOK)
}
