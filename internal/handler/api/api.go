// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON resource handlers for the content API: the
// collection and singleton resource shapes, login, upload, and the
// contact-form sink.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/balticclima/siteapi/internal/auth"
	"github.com/balticclima/siteapi/internal/service"
	"github.com/balticclima/siteapi/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	queries *store.Queries
	creds   auth.CredentialStore
	tokens  *auth.TokenCodec
	uploads *service.UploadService

	Products Collection
	Services Collection
	About    Singleton
	Contact  Singleton
	Hero     Singleton
	Footer   Singleton
}

// Collection is the handler set for a list-backed resource.
type Collection struct {
	List   http.HandlerFunc
	Create http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

// Singleton is the handler set for a single-row resource.
type Singleton struct {
	Get http.HandlerFunc
	Put http.HandlerFunc
}

// NewHandler creates the API handler set over the given database and services.
func NewHandler(db *sql.DB, creds auth.CredentialStore, tokens *auth.TokenCodec, uploads *service.UploadService) *Handler {
	queries := store.New(db)
	san := service.NewSanitizer()

	h := &Handler{
		queries: queries,
		creds:   creds,
		tokens:  tokens,
		uploads: uploads,
	}
	h.initResources(queries, san)
	return h
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error JSON response with a short human-readable
// message. Store-level details never reach the client.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, map[string]string{"message": message})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}

// decodeJSON decodes the request body into P. Malformed JSON yields a 400
// response; unknown fields are ignored per the documented update policy.
func decodeJSON[P any](w http.ResponseWriter, r *http.Request) (P, bool) {
	var payload P
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return payload, false
	}
	return payload, true
}
