// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
)

// singletonOps describes one single-row resource. Reads fall back to the
// configured value when no row has been written yet; writes merge the patch
// into the current state and persist through the store's atomic upsert, so
// concurrent first writes still converge on one row.
type singletonOps[T any, P any] struct {
	kind     string
	get      func(ctx context.Context) (T, error)
	upsert   func(ctx context.Context, record T) (T, error)
	fallback func() any
	apply    func(record *T, patch P)
}

func newSingleton[T any, P any](ops singletonOps[T, P]) Singleton {
	return Singleton{
		Get: ops.handleGet,
		Put: ops.handlePut,
	}
}

func (ops singletonOps[T, P]) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := ops.get(r.Context())
	if errors.Is(err, sql.ErrNoRows) {
		WriteJSON(w, http.StatusOK, ops.fallback())
		return
	}
	if err != nil {
		slog.Error("failed to load record", "kind", ops.kind, "error", err)
		WriteInternalError(w, "Error fetching "+ops.kind+" info")
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

func (ops singletonOps[T, P]) handlePut(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeJSON[P](w, r)
	if !ok {
		return
	}

	record, err := ops.get(r.Context())
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to load record", "kind", ops.kind, "error", err)
		WriteInternalError(w, "Error updating "+ops.kind+" info")
		return
	}

	ops.apply(&record, patch)
	saved, err := ops.upsert(r.Context(), record)
	if err != nil {
		slog.Error("failed to upsert record", "kind", ops.kind, "error", err)
		WriteInternalError(w, "Error updating "+ops.kind+" info")
		return
	}
	WriteJSON(w, http.StatusOK, saved)
}
