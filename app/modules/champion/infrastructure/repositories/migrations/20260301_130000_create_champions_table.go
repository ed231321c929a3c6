package championmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating champions table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS champions (
				id UUID PRIMARY KEY,
				round_id UUID NOT NULL,
				participant_id UUID NOT NULL,
				bet_id UUID NOT NULL,
				nickname TEXT NOT NULL,
				points BIGINT NOT NULL DEFAULT 0,
				hits BIGINT NOT NULL DEFAULT 0,
				best_line BIGINT NOT NULL DEFAULT 1,
				prize_type TEXT NOT NULL,
				prize_status TEXT NOT NULL DEFAULT 'pending',
				prize_details TEXT,
				requested_at TIMESTAMPTZ,
				paid_at TIMESTAMPTZ,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE(participant_id, round_id)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create champions table: %w", err)
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_champions_round ON champions (round_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_champions_created_at ON champions (created_at)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Champions table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping champions table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS champions;`); err != nil {
			return fmt.Errorf("failed to drop champions table: %w", err)
		}
		return nil
	})
}
