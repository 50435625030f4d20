package model

// Task read-only view of the tasks table owned by the task service.
// Only status is consulted by the tracker.
type Task struct {
	TaskID int64  `gorm:"column:taskid;primaryKey" json:"taskid"`
	Status string `gorm:"column:status;type:varchar(50)" json:"status"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
