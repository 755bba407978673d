package cli

import (
	"errors"

	"fixed-deposit-core/internal/config"
	"fixed-deposit-core/internal/database"
	apperrors "fixed-deposit-core/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrationStatus is what `migrate status` prints.
type migrationStatus struct {
	Driver  string `json:"driver"`
	Version uint   `json:"version"`
	Dirty   bool   `json:"dirty"`
	Applied bool   `json:"applied"`
}

func newMigrateCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			if app.Config.Database.Driver == config.DriverSQLite {
				if err := app.DB.AutoMigrate(); err != nil {
					return apperrors.Wrap(apperrors.SystemDatabaseError, err, "Failed to migrate sqlite schema")
				}
				app.Logger.Info("sqlite schema migrated")
				return nil
			}

			runner, err := migrationRunner(app)
			if err != nil {
				return err
			}
			if err := runner.RunMigrations(); err != nil {
				return apperrors.Wrap(apperrors.SystemDatabaseError, err, "Failed to apply migrations")
			}
			return nil
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			runner, err := migrationRunner(app)
			if err != nil {
				return err
			}
			if err := runner.Rollback(steps); err != nil {
				return apperrors.Wrap(apperrors.SystemDatabaseError, err, "Failed to roll back migrations")
			}
			app.Logger.Info("rolled back migrations", zap.Int("steps", steps))
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the applied migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			runner, err := migrationRunner(app)
			if err != nil {
				return err
			}

			version, dirty, err := runner.GetMigrationStatus()
			if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
				return apperrors.Wrap(apperrors.SystemDatabaseError, err, "Failed to read migration status")
			}
			return printJSON(cmd, migrationStatus{
				Driver:  app.Config.Database.Driver,
				Version: version,
				Dirty:   dirty,
				Applied: err == nil,
			})
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

// migrationRunner returns the SQL migration runner. Only postgres schemas
// are versioned; sqlite is kept current with AutoMigrate.
func migrationRunner(app *App) (*database.MigrationRunner, error) {
	if app.Config.Database.Driver != config.DriverPostgres {
		return nil, apperrors.Newf(apperrors.SystemConfigurationError,
			"SQL migrations require the postgres driver, configured driver is %s", app.Config.Database.Driver)
	}

	sqlDB, err := app.DB.DB.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.SystemDatabaseError, err, "Failed to open database handle")
	}
	return database.NewMigrationRunner(sqlDB, app.Config.Database.MigrationsPath, app.Logger), nil
}

func newHealthCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the database and the customer and product directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd, app.Health.Check(cmd.Context()))
		},
	}
}
