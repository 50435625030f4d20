package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mytime/pkg/store/mysql/model"
)

// TaskRepository reads the tasks table owned by the task service
type TaskRepository struct {
	ds *Datastore
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(ds *Datastore) *TaskRepository {
	return &TaskRepository{ds: ds}
}

// GetStatusForUpdate returns the task status and locks the task row (SELECT FOR UPDATE)
// for the rest of the surrounding transaction. found is false when the task does not exist.
func (r *TaskRepository) GetStatusForUpdate(ctx context.Context, taskID int64) (status string, found bool, err error) {
	var task model.Task
	err = r.ds.DB(ctx).
		Select("taskid", "status").
		Where("taskid = ?", taskID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get task status: %w", err)
	}
	return task.Status, true, nil
}
