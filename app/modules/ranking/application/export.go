package rankingservice

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ExportRoundRankingXLSX renders the round's ranking snapshot as an XLSX
// workbook, one row per entry in rank order.
func (s *RankingService) ExportRoundRankingXLSX(ctx context.Context, roundID sharedtypes.RoundID) ([]byte, error) {
	snapshot, err := s.repo.GetRoundRanking(ctx, nil, roundID)
	if err != nil {
		return nil, err
	}
	return renderRankingWorkbook(snapshot.Entries)
}

func renderRankingWorkbook(entries []sharedtypes.RoundRankingEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ranking"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create ranking sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Rank", "Nickname", "Team", "Points", "Hits", "Best Line"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, entry := range entries {
		row := i + 2
		values := []any{
			entry.Rank,
			entry.Nickname,
			entry.FavoriteTeam,
			entry.BestLine.Points,
			entry.BestLine.Hits,
			entry.BestLine.BestLine,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize ranking workbook: %w", err)
	}
	return buffer.Bytes(), nil
}
