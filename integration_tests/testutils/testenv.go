// Package testutils builds the shared environment for repository integration
// tests. Tests are gated behind INTEGRATION_TESTS=true so the unit suite
// stays free of Docker.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	betmigrations "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/repositories/migrations"
	championmigrations "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/repositories/migrations"
	rankingmigrations "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/repositories/migrations"
	roundmigrations "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories/migrations"
	usermigrations "github.com/palpite-club/pool-backend/app/modules/user/infrastructure/repositories/migrations"
	"github.com/palpite-club/pool-backend/integration_tests/containers"
)

// TestEnvironment holds the database the repository tests run against.
type TestEnvironment struct {
	Ctx         context.Context
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
}

// NewTestEnvironment skips unless INTEGRATION_TESTS=true, then starts
// Postgres, connects, and applies every module migration.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("set INTEGRATION_TESTS=true to run repository integration tests")
	}

	ctx := context.Background()

	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("failed to setup postgres container: %v", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return &TestEnvironment{
		Ctx:         ctx,
		PgContainer: pgContainer,
		DB:          db,
	}
}

func runMigrations(ctx context.Context, db *bun.DB) error {
	modules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"user", usermigrations.Migrations},
		{"round", roundmigrations.Migrations},
		{"bet", betmigrations.Migrations},
		{"ranking", rankingmigrations.Migrations},
		{"champion", championmigrations.Migrations},
	}

	for _, mod := range modules {
		migrator := migrate.NewMigrator(db, mod.migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init migrations for %s: %w", mod.name, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", mod.name, err)
		}
	}
	return nil
}
