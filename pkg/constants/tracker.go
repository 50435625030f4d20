package constants

// Client-facing tracker messages
const (
	MsgTaskNotFound        = "Task not found."
	MsgTaskClosed          = "Cannot add a tracker to a closed task."
	MsgTrackerNotFound     = "Tracker not found."
	MsgTrackerDeleted      = "Tracker deleted successfully."
	MsgNegativeHours       = "Hours must not be negative."
	MsgInvalidMonth        = "Month must be between 1 and 12."
	MsgInvalidYear         = "Year must have four digits."
	MsgAddTrackerFailed    = "An error occurred while adding the tracker."
	MsgUpdateTrackerFailed = "An error occurred while updating the tracker."
	MsgGetTrackersFailed   = "An error occurred while getting the trackers."
	MsgTotalHoursFailed    = "An error occurred while calculating the total hours."
	MsgDeleteTrackerFailed = "An error occurred while deleting the tracker."
)
