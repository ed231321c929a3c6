package usermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating participants table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS participants (
				id UUID PRIMARY KEY,
				nickname TEXT NOT NULL,
				favorite_team TEXT,
				rounds_played BIGINT NOT NULL DEFAULT 0,
				total_points BIGINT NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE(nickname)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create participants table: %w", err)
		}

		fmt.Println("Participants table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping participants table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS participants;`); err != nil {
			return fmt.Errorf("failed to drop participants table: %w", err)
		}
		return nil
	})
}
