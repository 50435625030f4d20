package main

import (
	"fmt"
	"net/http"

	"mytime/app/handler"
	"mytime/app/router"
	"mytime/internal/service"
	"mytime/pkg/config"
	"mytime/pkg/logger"
	mysqlstore "mytime/pkg/store/mysql"
	redisstore "mytime/pkg/store/redis"

	"github.com/gin-gonic/gin"
)

// initConfig initializes configuration
func (app *Application) initConfig() error {
	if err := config.Init(); err != nil {
		return err
	}
	app.config = config.GlobalConfig
	return nil
}

// initLogger initializes logging
func (app *Application) initLogger() error {
	if err := logger.Init(app.config.Logger); err != nil {
		return err
	}
	app.registerCleanup(func() {
		_ = logger.Sync()
	})
	return nil
}

// initDatabase opens the tracker database and checks it is reachable
func (app *Application) initDatabase() error {
	repo, err := mysqlstore.NewRepository(app.config.Database)
	if err != nil {
		return err
	}
	app.registerCleanup(func() {
		repo.Close()
		logger.InfoCtx(app.ctx, "Database connection has been closed")
	})

	if err := repo.GetDatastore().Ping(app.ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.InfoCtx(app.ctx, "Database connected, driver: %s", app.config.Database.Driver)

	if app.autoMigrate {
		if err := repo.Migrate(app.ctx); err != nil {
			return err
		}
	}

	app.mysqlRepo = repo
	return nil
}

// initRedis initializes the optional hours cache connection
func (app *Application) initRedis() error {
	if !app.config.Redis.Enabled {
		logger.InfoCtx(app.ctx, "Redis disabled, total hours are read from the database")
		return nil
	}

	client, err := redisstore.NewRedisClient(app.ctx, app.config.Redis)
	if err != nil {
		return err
	}

	app.redisClient = client
	app.registerCleanup(func() {
		client.Close()
		logger.InfoCtx(app.ctx, "Redis connection has been closed")
	})

	return nil
}

// initServices initializes service layer
func (app *Application) initServices() error {
	app.trackerService = service.NewTrackerService(
		app.mysqlRepo.Tracker,
		app.mysqlRepo.Task,
		app.mysqlRepo.GetDatastore(),
		service.TrackerOptions{
			Location:           app.config.Tracker.Location(),
			AllowNegativeHours: app.config.Tracker.NegativeHoursAllowed(),
		},
	)

	if app.redisClient != nil {
		app.trackerService.SetHoursCache(redisstore.NewHoursCache(app.redisClient.GetClient(), app.config.Redis.TTL))
		logger.InfoCtx(app.ctx, "Hours cache enabled, ttl: %v", app.config.Redis.TTL)
	}

	return nil
}

// initHandlers initializes handler layer
func (app *Application) initHandlers() error {
	app.trackerHandler = handler.NewTrackerHandler(app.trackerService)
	return nil
}

// initHTTPServer initializes HTTP server
func (app *Application) initHTTPServer() error {
	r := router.NewRouter(app.trackerHandler, app.config.Server.RequestTimeout)

	gin.SetMode(app.config.Server.Mode)

	app.ginEngine = gin.New()
	r.Setup(app.ginEngine)

	app.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.ginEngine,
	}

	return nil
}
