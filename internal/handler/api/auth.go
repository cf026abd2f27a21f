// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/balticclima/siteapi/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login verifies admin credentials and issues a bearer token. Failed
// attempts get a uniform message so the response does not leak which part
// of the credentials was wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[loginRequest](w, r)
	if !ok {
		return
	}

	if err := h.creds.Verify(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			WriteUnauthorized(w, "Invalid username or password")
			return
		}
		slog.Error("credential check failed", "error", err)
		WriteInternalError(w, "Error logging in")
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		WriteInternalError(w, "Error logging in")
		return
	}
	WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}
