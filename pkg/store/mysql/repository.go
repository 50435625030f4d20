package mysql

import (
	"context"
	"fmt"

	"mytime/pkg/config"
	"mytime/pkg/store/mysql/model"
)

// Repository aggregates all MySQL repositories
type Repository struct {
	ds *Datastore

	Tracker *TrackerRepository
	Task    *TaskRepository
}

// NewRepository opens the datastore and builds all sub-repositories
func NewRepository(cfg config.DatabaseConfig) (*Repository, error) {
	ds, err := NewDatastore(cfg)
	if err != nil {
		return nil, err
	}
	return NewRepositoryFromDatastore(ds), nil
}

// NewRepositoryFromDatastore builds sub-repositories over an existing datastore
func NewRepositoryFromDatastore(ds *Datastore) *Repository {
	return &Repository{
		ds:      ds,
		Tracker: NewTrackerRepository(ds),
		Task:    NewTaskRepository(ds),
	}
}

// GetDatastore returns the underlying datastore for transaction support
func (r *Repository) GetDatastore() *Datastore {
	return r.ds
}

// Migrate creates or updates the task_tracker table.
// The tasks table belongs to the task service and is never migrated here.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.ds.DB(ctx).AutoMigrate(&model.Tracker{}); err != nil {
		return fmt.Errorf("failed to migrate task_tracker: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.ds.Close()
}
