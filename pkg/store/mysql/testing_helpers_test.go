package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mytime/pkg/config"
	"mytime/pkg/store/mysql/model"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.Migrate(context.Background()))
	// tasks is owned by another service; create it here so lookups have a table to read.
	require.NoError(t, repo.GetDatastore().DB(context.Background()).AutoMigrate(&model.Task{}))
	return repo
}

func seedTask(t *testing.T, repo *Repository, taskID int64, status string) {
	t.Helper()
	err := repo.GetDatastore().DB(context.Background()).Create(&model.Task{TaskID: taskID, Status: status}).Error
	require.NoError(t, err)
}

func seedTracker(t *testing.T, repo *Repository, taskID, hours, createdAt int64) *model.Tracker {
	t.Helper()
	tracker := &model.Tracker{TaskID: taskID, Hours: hours, CreatedAt: createdAt, UpdatedAt: createdAt}
	require.NoError(t, repo.Tracker.Create(context.Background(), tracker))
	return tracker
}

func seedTrackerCtx(ctx context.Context, t *testing.T, repo *Repository) {
	t.Helper()
	require.NoError(t, repo.Tracker.Create(ctx, &model.Tracker{TaskID: 1, Hours: 1, CreatedAt: 1, UpdatedAt: 1}))
}
