// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/balticclima/siteapi/internal/service"
	"github.com/balticclima/siteapi/internal/store"
)

func TestSchedulerLifecycle(t *testing.T) {
	dir := t.TempDir()
	db, err := store.NewDB(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))

	sched, err := New(service.NewSweeper(store.New(db), t.TempDir()))
	require.NoError(t, err)
	require.Len(t, sched.cron.Entries(), 1)

	sched.Start()
	sched.Stop()
}
