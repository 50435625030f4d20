package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepositoryGetStatusForUpdate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTask(t, repo, 1, "OPEN")
	seedTask(t, repo, 2, "CLOSED")

	tests := []struct {
		name       string
		taskID     int64
		wantStatus string
		wantFound  bool
	}{
		{name: "open task", taskID: 1, wantStatus: "OPEN", wantFound: true},
		{name: "closed task", taskID: 2, wantStatus: "CLOSED", wantFound: true},
		{name: "missing task", taskID: 3, wantStatus: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.GetDatastore().ExecTx(ctx, func(txCtx context.Context) error {
				status, found, err := repo.Task.GetStatusForUpdate(txCtx, tt.taskID)
				if err != nil {
					return err
				}
				assert.Equal(t, tt.wantStatus, status)
				assert.Equal(t, tt.wantFound, found)
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestExecTxRollsBackOnError(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.GetDatastore().ExecTx(ctx, func(txCtx context.Context) error {
		seedTrackerCtx(txCtx, t, repo)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	trackers, err := repo.Tracker.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, trackers)
}
