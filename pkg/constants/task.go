package constants

// Task status constants.
// Statuses are owned by the task service; CLOSED is the only one the tracker interprets.
type TaskStatus string

const (
	TaskStatusClosed TaskStatus = "CLOSED"
)

func (s TaskStatus) String() string {
	return string(s)
}
