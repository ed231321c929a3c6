package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS rounds (
				id UUID PRIMARY KEY,
				number BIGINT NOT NULL,
				name TEXT NOT NULL,
				kind TEXT NOT NULL,
				state TEXT NOT NULL DEFAULT 'active',
				matches JSONB NOT NULL DEFAULT '[]',
				bets_close_at TIMESTAMPTZ,
				champion_summary JSONB,
				finalized_at TIMESTAMPTZ,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE(number)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create rounds table: %w", err)
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_rounds_state ON rounds (state)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Rounds table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping rounds table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS rounds;`); err != nil {
			return fmt.Errorf("failed to drop rounds table: %w", err)
		}
		return nil
	})
}
