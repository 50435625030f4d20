package interfaces

// CreateTrackerRequest body of POST /mytime/tracker
type CreateTrackerRequest struct {
	TaskID *int64 `json:"taskid" binding:"required"`
	Hours  *int64 `json:"hours" binding:"required"`
}

// UpdateTrackerRequest body of PUT /mytime/tracker/update/:tracker_id
type UpdateTrackerRequest struct {
	Hours *int64 `json:"hours" binding:"required"`
}

// TrackerInfo a stored tracker entry
type TrackerInfo struct {
	TrackerID int64 `json:"tracker_id"`
	TaskID    int64 `json:"taskid"`
	Hours     int64 `json:"hours"`
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// TrackerUpdateInfo the fields returned after an hours update
type TrackerUpdateInfo struct {
	TrackerID int64 `json:"tracker_id"`
	TaskID    int64 `json:"taskid"`
	Hours     int64 `json:"hours"`
	UpdatedAt int64 `json:"updated_at"`
}

// TotalHoursResponse aggregated hours
type TotalHoursResponse struct {
	TotalHours int64 `json:"total_hours"`
}

// MessageResponse plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
