// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/balticclima/siteapi/internal/service"
)

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload accepts a multipart image under the "file" field, stores it with a
// collision-free name, and returns the public URL the admin console embeds
// into resource image fields.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		WriteBadRequest(w, "Invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	stored, err := h.uploads.Save(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			WriteBadRequest(w, "Only image files are allowed")
		case errors.Is(err, service.ErrFileTooLarge):
			WriteBadRequest(w, "File is too large")
		default:
			slog.Error("failed to store upload", "filename", header.Filename, "error", err)
			WriteInternalError(w, "Error uploading file")
		}
		return
	}
	WriteJSON(w, http.StatusOK, uploadResponse{URL: stored.URL})
}
