package model

// Tracker MySQL model for task_tracker table.
// Timestamps are epoch seconds set by the service, not by GORM.
type Tracker struct {
	TrackerID int64 `gorm:"column:tracker_id;primaryKey;autoIncrement" json:"tracker_id"`
	TaskID    int64 `gorm:"column:taskid;not null;index:idx_taskid" json:"taskid"`
	Hours     int64 `gorm:"column:hours;not null" json:"hours"`
	CreatedAt int64 `gorm:"column:created_at;not null;index:idx_created_at;autoCreateTime:false" json:"created_at"`
	UpdatedAt int64 `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updated_at"`
}

// TableName specifies the table name for Tracker
func (Tracker) TableName() string {
	return "task_tracker"
}
