package rankingservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// RenderAffinityChart produces a PNG bar chart of the active favorite-team
// distribution.
func (s *RankingService) RenderAffinityChart(ctx context.Context) ([]byte, error) {
	snapshot, err := s.repo.GetAffinityRanking(ctx, nil)
	if err != nil {
		return nil, err
	}
	return renderAffinityBars(snapshot.Buckets)
}

func renderAffinityBars(buckets []sharedtypes.AffinityBucket) ([]byte, error) {
	bars := make([]chart.Value, len(buckets))
	for i, bucket := range buckets {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", bucket.Team, bucket.Share),
			Value: float64(bucket.Supporters),
		}
	}
	if len(bars) == 0 {
		bars = []chart.Value{{Label: NoTeamBucket, Value: 0}}
	}

	graph := chart.BarChart{
		Title:    "Torcidas",
		Width:    900,
		Height:   450,
		BarWidth: 40,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render affinity chart: %w", err)
	}
	return buffer.Bytes(), nil
}
