package rowstore

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
)

// SheetsStore implements RowStore on top of a Google Sheets spreadsheet.
// Each table is one sheet inside the spreadsheet.
type SheetsStore struct {
	srv           *sheets.Service
	spreadsheetID string
	sheetIDs      map[string]int64
}

// NewSheetsStore builds a Sheets-backed store using a service-account
// credentials file. It resolves the numeric sheet ID of every sheet up
// front so that row deletion can target the right dimension range.
func NewSheetsStore(ctx context.Context, spreadsheetID, credentialsFile string) (*SheetsStore, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	meta, err := srv.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}

	sheetIDs := make(map[string]int64, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}

	return &SheetsStore{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		sheetIDs:      sheetIDs,
	}, nil
}

func (s *SheetsStore) Read(ctx context.Context, table string) ([][]string, error) {
	readRange := fmt.Sprintf("%s!A2:%s", table, lastColumn[table])
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *SheetsStore) ReadCell(ctx context.Context, table string, rowIndex, col int) (string, error) {
	cellRange := fmt.Sprintf("%s!%c%d", table, 'A'+rune(col), rowIndex)
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, cellRange).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", cellRange, err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return fmt.Sprint(resp.Values[0][0]), nil
}

func (s *SheetsStore) Append(ctx context.Context, table string, row []string) error {
	appendRange := fmt.Sprintf("%s!A:%s", table, lastColumn[table])
	_, err := s.srv.Spreadsheets.Values.
		Append(s.spreadsheetID, appendRange, valueRange(row)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", table, err)
	}
	return nil
}

func (s *SheetsStore) Update(ctx context.Context, table string, rowIndex int, row []string) error {
	updateRange := fmt.Sprintf("%s!A%d:%s%d", table, rowIndex, lastColumn[table], rowIndex)
	_, err := s.srv.Spreadsheets.Values.
		Update(s.spreadsheetID, updateRange, valueRange(row)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", updateRange, err)
	}
	return nil
}

// Clear deletes the row dimension itself so later rows compact upward,
// instead of leaving a blank row behind.
func (s *SheetsStore) Clear(ctx context.Context, table string, rowIndex int) error {
	sheetID, ok := s.sheetIDs[table]
	if !ok {
		logger.Log.Warn().Str("table", table).Msg("Unknown sheet, skipping clear")
		return nil
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex - 1),
					EndIndex:   int64(rowIndex),
				},
			},
		}},
	}

	_, err := s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear row %d of %s: %w", rowIndex, table, err)
	}
	return nil
}

func valueRange(row []string) *sheets.ValueRange {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	return &sheets.ValueRange{Values: [][]interface{}{values}}
}
