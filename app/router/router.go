package router

import (
	"net/http"
	"time"

	"mytime/app/handler"
	"mytime/app/middleware"

	"github.com/gin-gonic/gin"
)

// BasePath prefix of every tracker route
const BasePath = "/mytime/tracker"

// Router Router
type Router struct {
	trackerHandler *handler.TrackerHandler
	requestTimeout time.Duration
}

// NewRouter creates a new Router
func NewRouter(trackerHandler *handler.TrackerHandler, requestTimeout time.Duration) *Router {
	return &Router{
		trackerHandler: trackerHandler,
		requestTimeout: requestTimeout,
	}
}

// Setup sets up routes
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Trace())
	engine.Use(middleware.Logger())
	engine.Use(middleware.Timeout(r.requestTimeout))

	tracker := engine.Group(BasePath)
	{
		tracker.POST("", r.trackerHandler.CreateTracker)
		tracker.POST("/", r.trackerHandler.CreateTracker)
		tracker.GET("", r.trackerHandler.ListTrackers)
		tracker.GET("/", r.trackerHandler.ListTrackers)
		tracker.GET("/:taskid", r.trackerHandler.ListTrackersByTask)
		tracker.PUT("/update/:tracker_id", r.trackerHandler.UpdateTracker)
		tracker.DELETE("/delete/:tracker_id", r.trackerHandler.DeleteTracker)

		// gin needs one wildcard name per segment: :id is the taskid or the month
		tracker.GET("/total-hours/:id", r.trackerHandler.TotalHoursForTask)
		tracker.GET("/total-hours/:id/:year", r.trackerHandler.TotalHoursForMonth)
	}

	// Health check
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
