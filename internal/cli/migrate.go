package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jobsim-assessment-service/internal/catalog"
	"jobsim-assessment-service/internal/config"
	pgmigrations "jobsim-assessment-service/internal/infra/postgres/migrations"
	"jobsim-assessment-service/internal/logger"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"
)

// NewMigrateCmd applies database migrations and optionally seeds the built-in
// question bank.
func NewMigrateCmd(configPath *string) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
			if err != nil {
				return err
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg, log); err != nil {
				return err
			}
			if seed {
				return seedCatalog(cmd.Context(), cfg, log)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "seed the questions table with the built-in bank")
	return cmd
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

func seedCatalog(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	questions := catalog.Builtin()
	for _, q := range questions {
		data, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal question %d: %w", q.ID, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO questions (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`,
			q.ID, string(data)); err != nil {
			return fmt.Errorf("seed question %d: %w", q.ID, err)
		}
	}
	log.Info("catalog seeded", zap.Int("questions", len(questions)))
	return nil
}
