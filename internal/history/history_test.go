package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "workwatch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRecordAndRecent(t *testing.T) {
	repo := newTestRepo(t)

	stopped := time.Now().Truncate(time.Second)
	rec := &Record{
		Username:  "tester",
		StartedAt: stopped.Add(-time.Hour),
		StoppedAt: stopped,
		Duration:  time.Hour,
		Logs:      []string{"wrote spec", "reviewed PR"},
	}
	require.NoError(t, repo.Record(rec))
	assert.NotZero(t, rec.ID)

	recent, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)

	got := recent[0]
	assert.Equal(t, "tester", got.Username)
	assert.Equal(t, time.Hour, got.Duration)
	assert.Equal(t, []string{"wrote spec", "reviewed PR"}, got.Logs)
	assert.True(t, got.StoppedAt.Equal(stopped))
}

func TestRecentOrderAndLimit(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Now().Add(-3 * time.Hour).Truncate(time.Second)
	for i := 0; i < 3; i++ {
		stopped := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Record(&Record{
			Username:  "tester",
			StartedAt: stopped.Add(-30 * time.Minute),
			StoppedAt: stopped,
			Duration:  30 * time.Minute,
		}))
	}

	recent, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].StoppedAt.After(recent[1].StoppedAt), "newest first")
}

func TestRecordWithoutLogs(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Record(&Record{
		Username:  "tester",
		StartedAt: time.Now().Add(-time.Minute),
		StoppedAt: time.Now(),
		Duration:  time.Minute,
	}))

	recent, err := repo.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Nil(t, recent[0].Logs)
}
