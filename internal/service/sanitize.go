// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips unsafe HTML from free-text fields before they are
// persisted. The admin console submits rich text for descriptions and the
// about content, so writes go through the UGC policy.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with the user-generated-content policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Clean sanitizes a single string.
func (s *Sanitizer) Clean(text string) string {
	return s.policy.Sanitize(text)
}

// CleanPtr sanitizes through a pointer, leaving nil untouched. Patch types use
// nil to mean "field absent".
func (s *Sanitizer) CleanPtr(text *string) *string {
	if text == nil {
		return nil
	}
	cleaned := s.policy.Sanitize(*text)
	return &cleaned
}
