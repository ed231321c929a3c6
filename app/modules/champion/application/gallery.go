package championservice

import (
	"context"

	championdb "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/repositories"
)

const defaultGalleryLimit = 20

// ListLatestChampions is the public gallery read: newest champions first.
func (s *ChampionService) ListLatestChampions(ctx context.Context, limit int) ([]*championdb.Champion, error) {
	if limit <= 0 {
		limit = defaultGalleryLimit
	}
	return s.repo.ListLatest(ctx, nil, limit)
}
