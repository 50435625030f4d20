package handler

import (
	"net/http"
	"strconv"

	"mytime/internal/service"
	"mytime/pkg/apperrors"
	"mytime/pkg/constants"
	"mytime/pkg/interfaces"
	"mytime/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TrackerHandler handles tracker operations
type TrackerHandler struct {
	trackerService *service.TrackerService
}

// NewTrackerHandler creates tracker handler
func NewTrackerHandler(trackerService *service.TrackerService) *TrackerHandler {
	return &TrackerHandler{
		trackerService: trackerService,
	}
}

// CreateTracker logs hours against a task
// @Summary Create tracker
// @Description Log hours against a task that exists and is not closed
// @Tags trackers
// @Accept json
// @Produce json
// @Param request body interfaces.CreateTrackerRequest true "Tracker request"
// @Success 200 {object} interfaces.TrackerInfo
// @Failure 400 {object} interfaces.ErrorResponse
// @Failure 500 {object} interfaces.ErrorResponse
// @Router /mytime/tracker [post]
func (h *TrackerHandler) CreateTracker(c *gin.Context) {
	var req interfaces.CreateTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.ErrorCtx(c.Request.Context(), "invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	info, err := h.trackerService.CreateTracker(c.Request.Context(), *req.TaskID, *req.Hours)
	if err != nil {
		h.respondError(c, err, constants.MsgAddTrackerFailed)
		return
	}

	c.JSON(http.StatusOK, info)
}

// UpdateTracker replaces the hours of a tracker
// @Summary Update tracker hours
// @Tags trackers
// @Accept json
// @Produce json
// @Param tracker_id path int true "Tracker ID"
// @Param request body interfaces.UpdateTrackerRequest true "Hours"
// @Success 200 {object} interfaces.TrackerUpdateInfo
// @Failure 400 {object} interfaces.ErrorResponse
// @Failure 404 {object} interfaces.ErrorResponse
// @Router /mytime/tracker/update/{tracker_id} [put]
func (h *TrackerHandler) UpdateTracker(c *gin.Context) {
	trackerID, ok := int64Param(c, "tracker_id", "tracker_id")
	if !ok {
		return
	}

	var req interfaces.UpdateTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.ErrorCtx(c.Request.Context(), "invalid request, tracker_id: %d, error: %v", trackerID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	info, err := h.trackerService.UpdateHours(c.Request.Context(), trackerID, *req.Hours)
	if err != nil {
		h.respondError(c, err, constants.MsgUpdateTrackerFailed)
		return
	}

	c.JSON(http.StatusOK, info)
}

// ListTrackersByTask lists the trackers of a task
// @Summary List trackers of a task
// @Tags trackers
// @Produce json
// @Param taskid path int true "Task ID"
// @Success 200 {array} interfaces.TrackerInfo
// @Router /mytime/tracker/{taskid} [get]
func (h *TrackerHandler) ListTrackersByTask(c *gin.Context) {
	taskID, ok := int64Param(c, "taskid", "taskid")
	if !ok {
		return
	}

	trackers, err := h.trackerService.ListTrackersByTask(c.Request.Context(), taskID)
	if err != nil {
		h.respondError(c, err, constants.MsgGetTrackersFailed)
		return
	}

	c.JSON(http.StatusOK, trackers)
}

// ListTrackers lists every tracker
// @Summary List trackers
// @Tags trackers
// @Produce json
// @Success 200 {array} interfaces.TrackerInfo
// @Router /mytime/tracker [get]
func (h *TrackerHandler) ListTrackers(c *gin.Context) {
	trackers, err := h.trackerService.ListTrackers(c.Request.Context())
	if err != nil {
		h.respondError(c, err, constants.MsgGetTrackersFailed)
		return
	}

	c.JSON(http.StatusOK, trackers)
}

// TotalHoursForTask sums the hours of a task
// @Summary Total hours of a task
// @Tags trackers
// @Produce json
// @Param taskid path int true "Task ID"
// @Success 200 {object} interfaces.TotalHoursResponse
// @Router /mytime/tracker/total-hours/{taskid} [get]
func (h *TrackerHandler) TotalHoursForTask(c *gin.Context) {
	taskID, ok := int64Param(c, "id", "taskid")
	if !ok {
		return
	}

	total, err := h.trackerService.TotalHoursForTask(c.Request.Context(), taskID)
	if err != nil {
		h.respondError(c, err, constants.MsgTotalHoursFailed)
		return
	}

	c.JSON(http.StatusOK, interfaces.TotalHoursResponse{TotalHours: total})
}

// TotalHoursForMonth sums the hours of trackers created in a calendar month
// @Summary Total hours of a month
// @Tags trackers
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year (4 digits)"
// @Success 200 {object} interfaces.TotalHoursResponse
// @Failure 400 {object} interfaces.ErrorResponse
// @Router /mytime/tracker/total-hours/{month}/{year} [get]
func (h *TrackerHandler) TotalHoursForMonth(c *gin.Context) {
	// the router shares the first wildcard with the per-task total
	month, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.MsgInvalidMonth})
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.MsgInvalidYear})
		return
	}

	total, err := h.trackerService.TotalHoursForMonth(c.Request.Context(), month, year)
	if err != nil {
		h.respondError(c, err, constants.MsgTotalHoursFailed)
		return
	}

	c.JSON(http.StatusOK, interfaces.TotalHoursResponse{TotalHours: total})
}

// DeleteTracker permanently removes a tracker
// @Summary Delete tracker
// @Tags trackers
// @Produce json
// @Param tracker_id path int true "Tracker ID"
// @Success 200 {object} interfaces.MessageResponse
// @Failure 404 {object} interfaces.ErrorResponse
// @Router /mytime/tracker/delete/{tracker_id} [delete]
func (h *TrackerHandler) DeleteTracker(c *gin.Context) {
	trackerID, ok := int64Param(c, "tracker_id", "tracker_id")
	if !ok {
		return
	}

	if err := h.trackerService.DeleteTracker(c.Request.Context(), trackerID); err != nil {
		h.respondError(c, err, constants.MsgDeleteTrackerFailed)
		return
	}

	c.JSON(http.StatusOK, interfaces.MessageResponse{Message: constants.MsgTrackerDeleted})
}

// respondError renders the client-facing message; causes only reach the log
func (h *TrackerHandler) respondError(c *gin.Context, err error, fallback string) {
	status, message := apperrors.Public(err, fallback)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), "%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	} else {
		logger.WarnCtx(c.Request.Context(), "%s %s rejected: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": message})
}

// int64Param parses an integer path parameter, answering 400 when it is not one
func int64Param(c *gin.Context, param, label string) (int64, bool) {
	raw := c.Param(param)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label + ": " + strconv.Quote(raw)})
		return 0, false
	}
	return value, true
}
