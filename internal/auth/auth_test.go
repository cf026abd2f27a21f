// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash = %q, want argon2id prefix", hash)
	}

	ok, err := CheckPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if !ok {
		t.Error("CheckPassword rejected the original password")
	}

	ok, err = CheckPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if ok {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if _, err := CheckPassword("pw", "not-a-hash"); err == nil {
		t.Error("CheckPassword accepted a malformed hash")
	}
}

func TestStaticCredentials(t *testing.T) {
	store, err := NewStaticCredentials("admin", "s3cure-Password!")
	if err != nil {
		t.Fatalf("NewStaticCredentials: %v", err)
	}

	ctx := context.Background()

	if err := store.Verify(ctx, "admin", "s3cure-Password!"); err != nil {
		t.Errorf("Verify with correct pair: %v", err)
	}
	if err := store.Verify(ctx, "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify with wrong password = %v, want ErrInvalidCredentials", err)
	}
	if err := store.Verify(ctx, "root", "s3cure-Password!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify with wrong username = %v, want ErrInvalidCredentials", err)
	}
}

func TestNewStaticCredentials_Empty(t *testing.T) {
	if _, err := NewStaticCredentials("", "pw"); err == nil {
		t.Error("NewStaticCredentials accepted an empty username")
	}
	if _, err := NewStaticCredentials("admin", ""); err == nil {
		t.Error("NewStaticCredentials accepted an empty password")
	}
}

const testSecret = "test-secret-key-32-bytes-long!!!"

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	token, err := codec.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "admin")
	}
	if claims.ExpiresAt != 0 {
		t.Errorf("ExpiresAt = %d, want 0 for unbounded tokens", claims.ExpiresAt)
	}
}

func TestTokenTampered(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0)

	token, err := codec.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrTokenMalformed},
		{"no separator", strings.ReplaceAll(token, ".", ""), ErrTokenMalformed},
		{"flipped body byte", "x" + token[1:], ErrTokenSignature},
		{"truncated signature", token[:len(token)-2], ErrTokenSignature},
		{"foreign signature", strings.Split(token, ".")[0] + ".AAAA", ErrTokenSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := codec.Verify(tt.token); !errors.Is(err, tt.want) {
				t.Errorf("Verify(%q) = %v, want %v", tt.token, err, tt.want)
			}
		})
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenCodec(testSecret, 0).Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewTokenCodec("another-secret-key-32-bytes-long", 0)
	if _, err := other.Verify(token); !errors.Is(err, ErrTokenSignature) {
		t.Errorf("Verify with wrong secret = %v, want ErrTokenSignature", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)
	issued := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issued }

	token, err := codec.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Still valid just before expiry.
	codec.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := codec.Verify(token); err != nil {
		t.Errorf("Verify before expiry: %v", err)
	}

	codec.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := codec.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify after expiry = %v, want ErrTokenExpired", err)
	}
}

type denyAll struct{}

func (denyAll) IsRevoked(string) bool { return true }

func TestTokenRevoked(t *testing.T) {
	codec := NewTokenCodec(testSecret, 0).WithRevoker(denyAll{})

	token, err := codec.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := codec.Verify(token); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("Verify revoked token = %v, want ErrTokenRevoked", err)
	}
}
