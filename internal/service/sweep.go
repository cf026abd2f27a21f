// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/balticclima/siteapi/internal/store"
)

// SweepGracePeriod is how old a file must be before the sweeper considers it
// orphaned. Fresh uploads may not be referenced by any record yet because the
// admin console uploads first and saves the record afterwards.
const SweepGracePeriod = 24 * time.Hour

// Sweeper removes uploaded files that no record's image field references.
type Sweeper struct {
	queries   *store.Queries
	uploadDir string
	grace     time.Duration
}

// NewSweeper creates a sweeper over the given upload directory.
func NewSweeper(queries *store.Queries, uploadDir string) *Sweeper {
	return &Sweeper{
		queries:   queries,
		uploadDir: uploadDir,
		grace:     SweepGracePeriod,
	}
}

// Sweep deletes unreferenced files older than the grace period and returns
// how many were removed. Thumbnails follow their originals.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	refs, err := s.queries.ListImageRefs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing image refs: %w", err)
	}

	// Referenced base names, with URL prefixes stripped.
	referenced := make(map[string]bool, len(refs))
	for _, ref := range refs {
		referenced[filepath.Base(ref)] = true
	}

	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return 0, fmt.Errorf("reading upload directory: %w", err)
	}

	cutoff := time.Now().Add(-s.grace)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if referenced[name] || referenced[originalOf(name)] {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.uploadDir, name)); err != nil {
			slog.Warn("failed to remove orphaned upload", "file", name, "error", err)
			continue
		}
		removed++
	}

	return removed, nil
}

// originalOf maps a thumbnail name back to its original, so a referenced
// original keeps its variant alive.
func originalOf(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if trimmed, ok := strings.CutSuffix(base, "_thumb"); ok {
		return trimmed + ext
	}
	return name
}
