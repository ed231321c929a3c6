// Package bundb aggregates the per-module bun repositories over one shared
// connection pool.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	betdb "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/repositories"
	championdb "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/repositories"
	rankingdb "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/repositories"
	rounddb "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories"
	userdb "github.com/palpite-club/pool-backend/app/modules/user/infrastructure/repositories"
	"github.com/palpite-club/pool-backend/config"
)

// DBService bundles every module repository with the shared bun.DB.
type DBService struct {
	RoundDB    *rounddb.RoundDBImpl
	BetDB      *betdb.BetDBImpl
	RankingDB  *rankingdb.RankingDBImpl
	ChampionDB *championdb.ChampionDBImpl
	UserDB     *userdb.UserDBImpl

	db *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService connects to Postgres and builds the repository set.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	return &DBService{
		RoundDB:    &rounddb.RoundDBImpl{DB: db},
		BetDB:      &betdb.BetDBImpl{DB: db},
		RankingDB:  &rankingdb.RankingDBImpl{DB: db},
		ChampionDB: &championdb.ChampionDBImpl{DB: db},
		UserDB:     &userdb.UserDBImpl{DB: db},
		db:         db,
	}, nil
}
