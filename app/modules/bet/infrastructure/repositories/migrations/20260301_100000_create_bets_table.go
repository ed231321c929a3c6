package betmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating bets table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS bets (
				id UUID PRIMARY KEY,
				round_id UUID NOT NULL,
				participant_id UUID NOT NULL,
				ticket_number BIGINT NOT NULL,
				amount_cents BIGINT NOT NULL DEFAULT 0,
				kind TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'active',
				lines JSONB NOT NULL DEFAULT '[]',
				performance JSONB,
				paid_at TIMESTAMPTZ,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE(participant_id, round_id),
				UNIQUE(ticket_number)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create bets table: %w", err)
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_bets_round_status ON bets (round_id, status)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_bets_created_at ON bets (created_at)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Bets table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping bets table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS bets;`); err != nil {
			return fmt.Errorf("failed to drop bets table: %w", err)
		}
		return nil
	})
}
