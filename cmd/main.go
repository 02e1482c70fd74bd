package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"shareit/cmd/bootstrap"
	"shareit/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug output because of a missing setting.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shareit",
	Short: "ShareIt booking service",
	// serve is the default so a bare container entrypoint starts the API.
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var (
	migrationsDir string
	atlasBinary   string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations with atlas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		return migrate(cmd.Context(), cfg, migrationsDir, atlasBinary)
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "directory holding the migration files")
	migrateCmd.Flags().StringVar(&atlasBinary, "atlas", "atlas", "path to the atlas binary")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// @title           ShareIt booking API
// @version         1.0
// @description     Booking lifecycle of the ShareIt rental marketplace. Callers identify themselves with the X-Sharer-User-Id header.

// @BasePath  /
// @schemes http https
func serve() error {
	app := fx.New(
		bootstrap.Module,
		bootstrap.ServerModule,
	)

	if err := app.Start(context.Background()); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped", "signal", sig.Signal, "exit_code", sig.ExitCode)
	if sig.ExitCode != 0 {
		return fmt.Errorf("application exited with code %d", sig.ExitCode)
	}
	return nil
}

func migrate(ctx context.Context, cfg config.Config, dir, binary string) error {
	client, err := atlasexec.NewClient(".", binary)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + dir,
	})
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
