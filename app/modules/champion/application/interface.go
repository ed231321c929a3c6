package championservice

import (
	"context"

	championevents "github.com/palpite-club/pool-backend/app/modules/champion/domain/events"
	championdb "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/repositories"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Service is the champion module's application surface.
type Service interface {
	ResolveChampions(ctx context.Context, round sharedtypes.RoundSnapshot, entries []sharedtypes.RoundRankingEntry) ([]sharedtypes.ChampionSummary, []sharedtypes.BetID, error)
	RequestPrize(ctx context.Context, payload championevents.PrizeRequestedPayloadV1) (results.OperationResult[championevents.PrizeRequestAppliedPayloadV1, championevents.PrizeRequestFailedPayloadV1], error)
	MarkPrizePaid(ctx context.Context, payload championevents.PrizePaidPayloadV1) (results.OperationResult[championevents.PrizePaidAppliedPayloadV1, championevents.PrizePaidFailedPayloadV1], error)
	ListLatestChampions(ctx context.Context, limit int) ([]*championdb.Champion, error)
}

var _ Service = (*ChampionService)(nil)
