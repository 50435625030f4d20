package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mytime/pkg/store/mysql/model"
)

// TrackerRepository handles task_tracker persistence
type TrackerRepository struct {
	ds *Datastore
}

// NewTrackerRepository creates a new tracker repository
func NewTrackerRepository(ds *Datastore) *TrackerRepository {
	return &TrackerRepository{ds: ds}
}

// Create inserts a tracker entry; TrackerID is filled in by the store
func (r *TrackerRepository) Create(ctx context.Context, tracker *model.Tracker) error {
	if err := r.ds.DB(ctx).Create(tracker).Error; err != nil {
		return fmt.Errorf("failed to create tracker: %w", err)
	}
	return nil
}

// Get retrieves a tracker by ID, nil when absent
func (r *TrackerRepository) Get(ctx context.Context, trackerID int64) (*model.Tracker, error) {
	return r.get(ctx, r.ds.DB(ctx), trackerID)
}

// GetForUpdate retrieves a tracker by ID and locks the row until the surrounding transaction ends
func (r *TrackerRepository) GetForUpdate(ctx context.Context, trackerID int64) (*model.Tracker, error) {
	return r.get(ctx, r.ds.DB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), trackerID)
}

func (r *TrackerRepository) get(_ context.Context, db *gorm.DB, trackerID int64) (*model.Tracker, error) {
	var tracker model.Tracker
	err := db.Where("tracker_id = ?", trackerID).Take(&tracker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tracker: %w", err)
	}
	return &tracker, nil
}

// UpdateHours sets hours and updated_at, returns the number of matched rows
func (r *TrackerRepository) UpdateHours(ctx context.Context, trackerID, hours, updatedAt int64) (int64, error) {
	result := r.ds.DB(ctx).Model(&model.Tracker{}).
		Where("tracker_id = ?", trackerID).
		Updates(map[string]interface{}{
			"hours":      hours,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update tracker: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ListByTask lists entries of one task ordered by tracker_id
func (r *TrackerRepository) ListByTask(ctx context.Context, taskID int64) ([]*model.Tracker, error) {
	trackers := make([]*model.Tracker, 0)
	err := r.ds.DB(ctx).Where("taskid = ?", taskID).Order("tracker_id ASC").Find(&trackers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers by task: %w", err)
	}
	return trackers, nil
}

// List lists all entries ordered by tracker_id
func (r *TrackerRepository) List(ctx context.Context) ([]*model.Tracker, error) {
	trackers := make([]*model.Tracker, 0)
	err := r.ds.DB(ctx).Order("tracker_id ASC").Find(&trackers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}
	return trackers, nil
}

// SumHoursByTask sums hours of one task, 0 when it has no entries
func (r *TrackerRepository) SumHoursByTask(ctx context.Context, taskID int64) (int64, error) {
	var total int64
	err := r.ds.DB(ctx).Model(&model.Tracker{}).
		Select("COALESCE(SUM(hours), 0)").
		Where("taskid = ?", taskID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum hours by task: %w", err)
	}
	return total, nil
}

// SumHoursCreatedBetween sums hours of entries with from <= created_at < to
func (r *TrackerRepository) SumHoursCreatedBetween(ctx context.Context, from, to int64) (int64, error) {
	var total int64
	err := r.ds.DB(ctx).Model(&model.Tracker{}).
		Select("COALESCE(SUM(hours), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum hours by period: %w", err)
	}
	return total, nil
}

// Delete physically deletes a tracker, returns the number of removed rows
func (r *TrackerRepository) Delete(ctx context.Context, trackerID int64) (int64, error) {
	result := r.ds.DB(ctx).Where("tracker_id = ?", trackerID).Delete(&model.Tracker{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete tracker: %w", result.Error)
	}
	return result.RowsAffected, nil
}
