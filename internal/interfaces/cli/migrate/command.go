// Package migrate implements the `sips migrate` command family around the
// golang-migrate SQL migrations in migrations/.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"sips/internal/infrastructure/config"
	"sips/internal/infrastructure/database"
	"sips/internal/infrastructure/migration"
	"sips/internal/shared/constants"
	"sips/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, roll back, and inspect the SQL migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	gormDB, migrator, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	if err := migrator.Up(gormDB); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	log.Info("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	gormDB, migrator, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	if err := migrator.Down(gormDB, steps); err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	log.Infow("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	gormDB, migrator, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	version, dirty, err := migrator.Version(gormDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	log.Infow("migration status", "version", version, "dirty", dirty)
	return nil
}

func initEnv() (*gorm.DB, *migration.Migrator, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	gormDB, err := database.Connect(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	scriptsPath, err := filepath.Abs("migrations")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	return gormDB, migration.NewMigrator(scriptsPath), log, nil
}
