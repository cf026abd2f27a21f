// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// collectionOps describes the store operations and patch semantics of one
// list-backed resource. The handlers built from it share a uniform contract:
// partial updates via pointer-field patches, 404 for unknown ids, and
// generic messages on store failures.
type collectionOps[T any, P any] struct {
	kind     string
	list     func(ctx context.Context) ([]T, error)
	get      func(ctx context.Context, id string) (T, error)
	create   func(ctx context.Context, record T) (T, error)
	update   func(ctx context.Context, record T) error
	remove   func(ctx context.Context, id string) (int64, error)
	apply    func(record *T, patch P)
	validate func(record T) string
}

func newCollection[T any, P any](ops collectionOps[T, P]) Collection {
	return Collection{
		List:   ops.handleList,
		Create: ops.handleCreate,
		Update: ops.handleUpdate,
		Delete: ops.handleDelete,
	}
}

func (ops collectionOps[T, P]) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := ops.list(r.Context())
	if err != nil {
		slog.Error("failed to list records", "kind", ops.kind, "error", err)
		WriteInternalError(w, "Error fetching "+ops.kind+"s")
		return
	}
	if records == nil {
		records = []T{}
	}
	WriteJSON(w, http.StatusOK, records)
}

func (ops collectionOps[T, P]) handleCreate(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeJSON[P](w, r)
	if !ok {
		return
	}

	var record T
	ops.apply(&record, patch)
	if msg := ops.validate(record); msg != "" {
		WriteBadRequest(w, msg)
		return
	}

	created, err := ops.create(r.Context(), record)
	if err != nil {
		slog.Error("failed to create record", "kind", ops.kind, "error", err)
		WriteInternalError(w, "Error creating "+ops.kind)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (ops collectionOps[T, P]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	patch, ok := decodeJSON[P](w, r)
	if !ok {
		return
	}

	record, err := ops.get(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		WriteNotFound(w, capitalize(ops.kind)+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to load record", "kind", ops.kind, "id", id, "error", err)
		WriteInternalError(w, "Error updating "+ops.kind)
		return
	}

	ops.apply(&record, patch)
	if msg := ops.validate(record); msg != "" {
		WriteBadRequest(w, msg)
		return
	}
	if err := ops.update(r.Context(), record); err != nil {
		slog.Error("failed to update record", "kind", ops.kind, "id", id, "error", err)
		WriteInternalError(w, "Error updating "+ops.kind)
		return
	}

	// Re-read so the response carries the store-assigned update timestamp.
	record, err = ops.get(r.Context(), id)
	if err != nil {
		slog.Error("failed to reload record", "kind", ops.kind, "id", id, "error", err)
		WriteInternalError(w, "Error updating "+ops.kind)
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

func (ops collectionOps[T, P]) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	affected, err := ops.remove(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete record", "kind", ops.kind, "id", id, "error", err)
		WriteInternalError(w, "Error deleting "+ops.kind)
		return
	}
	if affected == 0 {
		WriteNotFound(w, capitalize(ops.kind)+" not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
