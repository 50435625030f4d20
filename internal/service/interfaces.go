package service

import (
	"context"
	"time"

	"mytime/pkg/store/mysql"
	"mytime/pkg/store/mysql/model"
	redisstore "mytime/pkg/store/redis"
)

type trackerRepository interface {
	Create(ctx context.Context, tracker *model.Tracker) error
	GetForUpdate(ctx context.Context, trackerID int64) (*model.Tracker, error)
	UpdateHours(ctx context.Context, trackerID, hours, updatedAt int64) (int64, error)
	ListByTask(ctx context.Context, taskID int64) ([]*model.Tracker, error)
	List(ctx context.Context) ([]*model.Tracker, error)
	SumHoursByTask(ctx context.Context, taskID int64) (int64, error)
	SumHoursCreatedBetween(ctx context.Context, from, to int64) (int64, error)
	Delete(ctx context.Context, trackerID int64) (int64, error)
}

type taskRepository interface {
	GetStatusForUpdate(ctx context.Context, taskID int64) (string, bool, error)
}

type transactor interface {
	ExecTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type hoursCache interface {
	GetTaskTotal(ctx context.Context, taskID int64) (int64, bool, error)
	SetTaskTotal(ctx context.Context, taskID int64, total int64) error
	GetMonthTotal(ctx context.Context, year int, month time.Month) (int64, bool, error)
	SetMonthTotal(ctx context.Context, year int, month time.Month, total int64) error
	Invalidate(ctx context.Context, taskID int64, year int, month time.Month) error
}

// compile-time assertions

var (
	_ trackerRepository = (*mysql.TrackerRepository)(nil)
	_ taskRepository    = (*mysql.TaskRepository)(nil)
	_ transactor        = (*mysql.Datastore)(nil)
	_ hoursCache        = (*redisstore.HoursCache)(nil)
)
