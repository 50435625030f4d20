package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mytime/app/handler"
	"mytime/app/middleware"
	"mytime/internal/service"
	"mytime/pkg/config"
	"mytime/pkg/store/mysql"
	"mytime/pkg/store/mysql/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*gin.Engine, *mysql.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	repo, err := mysql.NewRepository(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Migrate(ctx))
	require.NoError(t, repo.GetDatastore().DB(ctx).AutoMigrate(&model.Task{}))

	svc := service.NewTrackerService(repo.Tracker, repo.Task, repo.GetDatastore(), service.TrackerOptions{AllowNegativeHours: true})
	engine := gin.New()
	NewRouter(handler.NewTrackerHandler(svc), 5*time.Second).Setup(engine)
	return engine, repo
}

func serve(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestOpenThenClosedTaskScenario(t *testing.T) {
	engine, repo := newTestEngine(t)
	db := repo.GetDatastore().DB(context.Background())
	require.NoError(t, db.Create(&model.Task{TaskID: 1, Status: "OPEN"}).Error)

	w := serve(engine, http.MethodPost, BasePath+"/", `{"taskid":1,"hours":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Model(&model.Task{}).Where("taskid = ?", 1).Update("status", "CLOSED").Error)

	w = serve(engine, http.MethodPost, BasePath+"/", `{"taskid":1,"hours":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Cannot add a tracker to a closed task."}`, w.Body.String())

	w = serve(engine, http.MethodGet, BasePath+"/total-hours/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_hours":2}`, w.Body.String())
}

func TestRoutesResolve(t *testing.T) {
	engine, repo := newTestEngine(t)
	require.NoError(t, repo.GetDatastore().DB(context.Background()).
		Create(&model.Task{TaskID: 1, Status: "OPEN"}).Error)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, BasePath, `{"taskid":1,"hours":4}`, http.StatusOK},
		{http.MethodPost, BasePath + "/", `{"taskid":1,"hours":4}`, http.StatusOK},
		{http.MethodGet, BasePath, "", http.StatusOK},
		{http.MethodGet, BasePath + "/", "", http.StatusOK},
		{http.MethodGet, BasePath + "/1", "", http.StatusOK},
		{http.MethodGet, BasePath + "/total-hours/1", "", http.StatusOK},
		{http.MethodGet, BasePath + "/total-hours/3/2024", "", http.StatusOK},
		{http.MethodPut, BasePath + "/update/1", `{"hours":1}`, http.StatusOK},
		{http.MethodDelete, BasePath + "/delete/2", "", http.StatusOK},
		{http.MethodDelete, BasePath + "/delete/2", "", http.StatusNotFound},
		{http.MethodGet, "/health", "", http.StatusOK},
	}

	for _, tt := range tests {
		w := serve(engine, tt.method, tt.path, tt.body)
		assert.Equal(t, tt.want, w.Code, "%s %s: %s", tt.method, tt.path, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(middleware.TraceHeader), "%s %s", tt.method, tt.path)
	}
}

func TestTotalHoursRoutesAreDistinct(t *testing.T) {
	engine, repo := newTestEngine(t)
	require.NoError(t, repo.GetDatastore().DB(context.Background()).
		Create(&model.Task{TaskID: 3, Status: "OPEN"}).Error)

	require.Equal(t, http.StatusOK, serve(engine, http.MethodPost, BasePath, `{"taskid":3,"hours":7}`).Code)

	// /3 is the task total, /3/1970 is March 1970
	w := serve(engine, http.MethodGet, BasePath+"/total-hours/3", "")
	assert.JSONEq(t, `{"total_hours":7}`, w.Body.String())

	w = serve(engine, http.MethodGet, BasePath+"/total-hours/3/1970", "")
	assert.JSONEq(t, `{"total_hours":0}`, w.Body.String())
}
