// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when a username/password pair does not
// match any known account.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialStore verifies administrative credentials. The concrete
// implementation is a single configured account, but handlers depend only on
// this interface so the verification contract is testable on its own.
type CredentialStore interface {
	Verify(ctx context.Context, username, password string) error
}

// StaticCredentials is a CredentialStore holding one account. The password is
// hashed at construction so the plaintext never outlives startup.
type StaticCredentials struct {
	username     string
	passwordHash string
}

// NewStaticCredentials builds a single-account credential store.
func NewStaticCredentials(username, password string) (*StaticCredentials, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("admin username and password must not be empty")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	return &StaticCredentials{username: username, passwordHash: hash}, nil
}

// Verify checks the pair against the configured account. The password hash is
// always evaluated, even on a username mismatch, to keep timing uniform.
func (s *StaticCredentials) Verify(_ context.Context, username, password string) error {
	ok, err := CheckPassword(password, s.passwordHash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	if !ok || !userMatch {
		return ErrInvalidCredentials
	}
	return nil
}
