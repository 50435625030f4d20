package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mytime/pkg/logger"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var autoMigrate bool

	rootCmd := &cobra.Command{
		Use:           "mytime",
		Short:         "Time tracker API for mytime tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(autoMigrate)
		},
	}
	rootCmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "create or update the task_tracker table before serving")

	rootCmd.AddCommand(newMigrateCmd(), newVersionCmd())
	return rootCmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the task_tracker table",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := NewApplication()
			defer app.Shutdown(5 * time.Second)

			if err := app.InitializeStorage(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			if err := app.mysqlRepo.Migrate(app.ctx); err != nil {
				logger.ErrorCtx(app.ctx, "Migration failed: %v", err)
				return err
			}
			logger.InfoCtx(app.ctx, "Migration completed")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func serve(autoMigrate bool) error {
	// Create application instance
	app := NewApplication()
	app.autoMigrate = autoMigrate

	// Initialize all components
	if err := app.Initialize(); err != nil {
		logger.FatalCtx(context.Background(), "Application initialization failed: %v", err)
	}

	// Start all components
	if err := app.Start(); err != nil {
		logger.FatalCtx(app.ctx, "Application startup failed: %v", err)
	}

	// Wait for exit signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.InfoCtx(app.ctx, "Received exit signal: %v", sig)

	// Graceful shutdown (30 seconds timeout)
	if err := app.Shutdown(30 * time.Second); err != nil {
		logger.ErrorCtx(app.ctx, "Application shutdown failed: %v", err)
		return err
	}

	logger.InfoCtx(app.ctx, "Application safely exited")
	return nil
}
