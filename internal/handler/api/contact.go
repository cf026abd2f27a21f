// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type contactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactSubmit records an incoming contact-form submission. Delivery is a
// logging sink: submissions land in the structured log for the operator to
// follow up on, and the visitor always gets a success acknowledgement, even
// when the body does not parse.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var form contactSubmission
	_ = json.NewDecoder(r.Body).Decode(&form)

	slog.Info("contact form submission",
		"name", form.Name,
		"email", form.Email,
		"phone", form.Phone,
		"message", form.Message,
	)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Message received successfully"})
}
