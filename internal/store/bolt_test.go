package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/iconsync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Bolt {
	t.Helper()

	db, err := NewBolt(filepath.Join(t.TempDir(), "nested", "history.bolt"))
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	return db
}

func TestBolt_Ping(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Ping())
}

func TestBolt_RecordAndGetRun(t *testing.T) {
	db := setupTestDB(t)

	run := &model.SyncRun{
		StartedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		FinishedAt: time.Date(2026, 1, 2, 3, 4, 9, 0, time.UTC),
		Projects: []model.ProjectSummary{
			{ProjectID: "p1", ProjectName: "My Project", Version: "1.0.0", Icons: 4, Added: 2},
		},
	}

	require.NoError(t, db.RecordRun(run))
	require.NotEmpty(t, run.ID, "RecordRun should assign an id")

	got, err := db.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, run.StartedAt.Equal(got.StartedAt))
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "My Project", got.Projects[0].ProjectName)
	assert.Equal(t, 2, got.Projects[0].Added)
}

func TestBolt_GetRun_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetRun("missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestBolt_ListRuns_NewestFirst(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"second", "first", "third"} {
		offset := map[string]int{"first": 0, "second": 1, "third": 2}[id]
		run := &model.SyncRun{ID: id, StartedAt: base.Add(time.Duration(offset) * time.Minute)}
		require.NoError(t, db.RecordRun(run), "record %d", i)
	}

	runs, err := db.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})

	limited, err := db.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "third", limited[0].ID)
}

func TestBolt_RecordRun_ReplacesSameID(t *testing.T) {
	db := setupTestDB(t)

	run := &model.SyncRun{ID: "r1", StartedAt: time.Now()}
	require.NoError(t, db.RecordRun(run))

	run.StartedAt = run.StartedAt.Add(time.Hour)
	run.Projects = []model.ProjectSummary{{ProjectID: "p"}}
	require.NoError(t, db.RecordRun(run))

	runs, err := db.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Len(t, runs[0].Projects, 1)
}

func TestBolt_RecordRun_Nil(t *testing.T) {
	db := setupTestDB(t)
	require.Error(t, db.RecordRun(nil))
}
