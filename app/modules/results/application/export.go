package resultsservice

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// ExportXLSX renders the guild's registered results as a spreadsheet.
func (s *ResultsService) ExportXLSX(ctx context.Context, guildID shared.GuildID) ([]byte, error) {
	results, err := s.ResultDB.List(ctx, guildID, nil)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Date", "Enemy", "Score", "Enemy Score", "Differential"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, result := range results {
		values := []interface{}{
			result.PlayedAt.Format("2006-01-02"),
			result.Enemy,
			result.Score,
			result.EnemyScore,
			result.Diff(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
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
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buffer.Bytes(), nil
}
