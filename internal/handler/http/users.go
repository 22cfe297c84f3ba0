// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Pryandito

package http

import (
	"net/http"

	"github.com/apryandito/user-directory/internal/utils"
	"github.com/apryandito/user-directory/models"
	"github.com/go-chi/chi/v5"
)

// listUsers returns every registered user projected to public fields, in
// registration order. An empty directory is reported as 404 rather than an
// empty list.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foundUsers, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	publicUsers := make([]models.PublicUser, 0, len(foundUsers))
	for _, user := range foundUsers {
		publicUsers = append(publicUsers, user.Public())
	}

	utils.WriteJSON(w, models.Response{
		Message: msgSuccess,
		Data:    publicUsers,
	}, http.StatusOK)
}

// getUser returns a single user by the numeric userId path parameter,
// projected to public fields.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foundUser, err := h.services.UserService.GetUser(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: msgSuccess,
		Data:    foundUser.Public(),
	}, http.StatusOK)
}
