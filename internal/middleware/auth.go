// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// cross-origin policy, and request limits.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/balticclima/siteapi/internal/auth"
)

// ContextKey is the type for request context keys set by this package.
type ContextKey string

// ContextKeyIdentity is the context key for the authenticated identity.
const ContextKeyIdentity ContextKey = "identity"

// writeAuthError writes a JSON error response for an auth failure.
func writeAuthError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// RequireToken creates middleware guarding administrative routes. A missing or
// malformed Authorization header fails closed with 401; a present token that
// does not verify fails with 403. On success the decoded claims are attached
// to the request context; the token itself is the sole source of identity.
func RequireToken(codec *auth.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, http.StatusUnauthorized, "Missing Authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
				writeAuthError(w, http.StatusUnauthorized, "Invalid Authorization header format. Use: Bearer <token>")
				return
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the authenticated claims from the request context.
// Returns nil if the request did not pass the token gate.
func GetIdentity(r *http.Request) *auth.Claims {
	claims, ok := r.Context().Value(ContextKeyIdentity).(auth.Claims)
	if !ok {
		return nil
	}
	return &claims
}
