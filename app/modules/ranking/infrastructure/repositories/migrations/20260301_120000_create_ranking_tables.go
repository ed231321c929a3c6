package rankingmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating ranking snapshot tables...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS round_rankings (
				id UUID PRIMARY KEY,
				round_id UUID NOT NULL,
				entries JSONB NOT NULL DEFAULT '[]',
				version BIGINT NOT NULL DEFAULT 1,
				computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE(round_id)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create round_rankings table: %w", err)
		}

		_, err = db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS overall_rankings (
				id UUID PRIMARY KEY,
				entries JSONB NOT NULL DEFAULT '[]',
				is_active BOOLEAN NOT NULL DEFAULT FALSE,
				computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create overall_rankings table: %w", err)
		}

		_, err = db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS affinity_rankings (
				id UUID PRIMARY KEY,
				buckets JSONB NOT NULL DEFAULT '[]',
				is_active BOOLEAN NOT NULL DEFAULT FALSE,
				computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create affinity_rankings table: %w", err)
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_overall_rankings_active ON overall_rankings (is_active)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_affinity_rankings_active ON affinity_rankings (is_active)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Ranking snapshot tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping ranking snapshot tables...")

		if _, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS affinity_rankings;
			DROP TABLE IF EXISTS overall_rankings;
			DROP TABLE IF EXISTS round_rankings;
		`); err != nil {
			return fmt.Errorf("failed to drop ranking snapshot tables: %w", err)
		}
		return nil
	})
}
