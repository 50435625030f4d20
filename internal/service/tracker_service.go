package service

import (
	"context"
	"time"

	"mytime/pkg/apperrors"
	"mytime/pkg/constants"
	"mytime/pkg/interfaces"
	"mytime/pkg/logger"
	"mytime/pkg/store/mysql/model"
)

// TrackerOptions business rule settings
type TrackerOptions struct {
	Location           *time.Location // zone used to cut calendar months
	AllowNegativeHours bool
}

// TrackerService handles tracker business logic
type TrackerService struct {
	trackerRepo trackerRepository
	taskRepo    taskRepository
	tx          transactor
	hoursCache  hoursCache

	location           *time.Location
	allowNegativeHours bool
	now                func() time.Time
}

// NewTrackerService creates a new tracker service
func NewTrackerService(trackerRepo trackerRepository, taskRepo taskRepository, tx transactor, opts TrackerOptions) *TrackerService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &TrackerService{
		trackerRepo:        trackerRepo,
		taskRepo:           taskRepo,
		tx:                 tx,
		location:           loc,
		allowNegativeHours: opts.AllowNegativeHours,
		now:                time.Now,
	}
}

// SetHoursCache enables caching of total-hours answers
func (s *TrackerService) SetHoursCache(cache hoursCache) {
	s.hoursCache = cache
}

// CreateTracker logs hours against an existing task that is not closed.
// The task row stays locked between the status check and the insert.
func (s *TrackerService) CreateTracker(ctx context.Context, taskID, hours int64) (*interfaces.TrackerInfo, error) {
	if err := s.checkHours(hours); err != nil {
		return nil, err
	}

	now := s.now().Unix()
	tracker := &model.Tracker{
		TaskID:    taskID,
		Hours:     hours,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		status, found, err := s.taskRepo.GetStatusForUpdate(txCtx, taskID)
		if err != nil {
			return apperrors.NewInternalError(constants.MsgAddTrackerFailed, err)
		}
		if !found {
			return apperrors.NewValidationError(constants.MsgTaskNotFound)
		}
		if status == constants.TaskStatusClosed.String() {
			return apperrors.NewValidationError(constants.MsgTaskClosed)
		}
		if err := s.trackerRepo.Create(txCtx, tracker); err != nil {
			return apperrors.NewInternalError(constants.MsgAddTrackerFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err, constants.MsgAddTrackerFailed)
	}

	s.invalidate(ctx, tracker)
	logger.InfoCtx(ctx, "tracker created, tracker_id: %d, taskid: %d, hours: %d", tracker.TrackerID, tracker.TaskID, tracker.Hours)
	return toTrackerInfo(tracker), nil
}

// UpdateHours replaces the hours of a tracker. The task status is not consulted:
// hours stay editable after the task is closed.
func (s *TrackerService) UpdateHours(ctx context.Context, trackerID, hours int64) (*interfaces.TrackerUpdateInfo, error) {
	if err := s.checkHours(hours); err != nil {
		return nil, err
	}

	var updated *model.Tracker
	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		existing, err := s.trackerRepo.GetForUpdate(txCtx, trackerID)
		if err != nil {
			return apperrors.NewInternalError(constants.MsgUpdateTrackerFailed, err)
		}
		if existing == nil {
			return apperrors.NewNotFoundError(constants.MsgTrackerNotFound)
		}

		// updated_at never moves backwards, even if the wall clock does
		updatedAt := s.now().Unix()
		if updatedAt < existing.UpdatedAt {
			updatedAt = existing.UpdatedAt
		}
		if _, err := s.trackerRepo.UpdateHours(txCtx, trackerID, hours, updatedAt); err != nil {
			return apperrors.NewInternalError(constants.MsgUpdateTrackerFailed, err)
		}

		existing.Hours = hours
		existing.UpdatedAt = updatedAt
		updated = existing
		return nil
	})
	if err != nil {
		return nil, asAppError(err, constants.MsgUpdateTrackerFailed)
	}

	s.invalidate(ctx, updated)
	logger.InfoCtx(ctx, "tracker updated, tracker_id: %d, hours: %d", updated.TrackerID, updated.Hours)
	return &interfaces.TrackerUpdateInfo{
		TrackerID: updated.TrackerID,
		TaskID:    updated.TaskID,
		Hours:     updated.Hours,
		UpdatedAt: updated.UpdatedAt,
	}, nil
}

// ListTrackersByTask lists the trackers of a task in tracker_id order
func (s *TrackerService) ListTrackersByTask(ctx context.Context, taskID int64) ([]*interfaces.TrackerInfo, error) {
	trackers, err := s.trackerRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, apperrors.NewInternalError(constants.MsgGetTrackersFailed, err)
	}
	return toTrackerInfos(trackers), nil
}

// ListTrackers lists every tracker in tracker_id order
func (s *TrackerService) ListTrackers(ctx context.Context) ([]*interfaces.TrackerInfo, error) {
	trackers, err := s.trackerRepo.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(constants.MsgGetTrackersFailed, err)
	}
	return toTrackerInfos(trackers), nil
}

// TotalHoursForTask sums the hours logged against a task, 0 when none
func (s *TrackerService) TotalHoursForTask(ctx context.Context, taskID int64) (int64, error) {
	if s.hoursCache != nil {
		total, ok, err := s.hoursCache.GetTaskTotal(ctx, taskID)
		if err != nil {
			logger.WarnCtx(ctx, "hours cache read failed, taskid: %d, error: %v", taskID, err)
		} else if ok {
			return total, nil
		}
	}

	total, err := s.trackerRepo.SumHoursByTask(ctx, taskID)
	if err != nil {
		return 0, apperrors.NewInternalError(constants.MsgTotalHoursFailed, err)
	}

	if s.hoursCache != nil {
		if err := s.hoursCache.SetTaskTotal(ctx, taskID, total); err != nil {
			logger.WarnCtx(ctx, "hours cache write failed, taskid: %d, error: %v", taskID, err)
		}
	}
	return total, nil
}

// TotalHoursForMonth sums the hours of trackers created in the calendar month,
// with month boundaries taken in the configured time zone
func (s *TrackerService) TotalHoursForMonth(ctx context.Context, month, year int) (int64, error) {
	from, to, err := MonthRange(year, month, s.location)
	if err != nil {
		return 0, err
	}

	if s.hoursCache != nil {
		total, ok, err := s.hoursCache.GetMonthTotal(ctx, year, time.Month(month))
		if err != nil {
			logger.WarnCtx(ctx, "hours cache read failed, month: %04d-%02d, error: %v", year, month, err)
		} else if ok {
			return total, nil
		}
	}

	total, err := s.trackerRepo.SumHoursCreatedBetween(ctx, from, to)
	if err != nil {
		return 0, apperrors.NewInternalError(constants.MsgTotalHoursFailed, err)
	}

	if s.hoursCache != nil {
		if err := s.hoursCache.SetMonthTotal(ctx, year, time.Month(month), total); err != nil {
			logger.WarnCtx(ctx, "hours cache write failed, month: %04d-%02d, error: %v", year, month, err)
		}
	}
	return total, nil
}

// DeleteTracker permanently removes a tracker
func (s *TrackerService) DeleteTracker(ctx context.Context, trackerID int64) error {
	var deleted *model.Tracker
	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		existing, err := s.trackerRepo.GetForUpdate(txCtx, trackerID)
		if err != nil {
			return apperrors.NewInternalError(constants.MsgDeleteTrackerFailed, err)
		}
		if existing == nil {
			return apperrors.NewNotFoundError(constants.MsgTrackerNotFound)
		}
		if _, err := s.trackerRepo.Delete(txCtx, trackerID); err != nil {
			return apperrors.NewInternalError(constants.MsgDeleteTrackerFailed, err)
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return asAppError(err, constants.MsgDeleteTrackerFailed)
	}

	s.invalidate(ctx, deleted)
	logger.InfoCtx(ctx, "tracker deleted, tracker_id: %d", trackerID)
	return nil
}

func (s *TrackerService) checkHours(hours int64) error {
	if hours < 0 && !s.allowNegativeHours {
		return apperrors.NewValidationError(constants.MsgNegativeHours)
	}
	return nil
}

// invalidate drops cached totals the tracker contributes to
func (s *TrackerService) invalidate(ctx context.Context, tracker *model.Tracker) {
	if s.hoursCache == nil || tracker == nil {
		return
	}
	created := time.Unix(tracker.CreatedAt, 0).In(s.location)
	if err := s.hoursCache.Invalidate(ctx, tracker.TaskID, created.Year(), created.Month()); err != nil {
		logger.WarnCtx(ctx, "hours cache invalidation failed, tracker_id: %d, error: %v", tracker.TrackerID, err)
	}
}

// asAppError keeps taxonomy errors and reports anything else (e.g. a failed commit) as internal
func asAppError(err error, message string) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.NewInternalError(message, err)
}

func toTrackerInfo(t *model.Tracker) *interfaces.TrackerInfo {
	return &interfaces.TrackerInfo{
		TrackerID: t.TrackerID,
		TaskID:    t.TaskID,
		Hours:     t.Hours,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTrackerInfos(trackers []*model.Tracker) []*interfaces.TrackerInfo {
	result := make([]*interfaces.TrackerInfo, len(trackers))
	for i, t := range trackers {
		result[i] = toTrackerInfo(t)
	}
	return result
}
