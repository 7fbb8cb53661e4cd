package rowstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
)

// LocalStore implements RowStore over a JSON file for local development,
// keeping the same positional semantics as the Sheets backend. The file
// maps table names to raw rows including the header row.
type LocalStore struct {
	mu   sync.Mutex
	path string
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (s *LocalStore) load() (map[string][][]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Log.Warn().Str("path", s.path).Msg("Local DB file not found, starting empty")
			return map[string][][]string{}, nil
		}
		return nil, fmt.Errorf("failed to read local db: %w", err)
	}

	db := map[string][][]string{}
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("local db is not valid JSON: %w", err)
	}
	return db, nil
}

func (s *LocalStore) save(db map[string][][]string) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write local db: %w", err)
	}
	return nil
}

func (s *LocalStore) Read(ctx context.Context, table string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}

	rows := db[table]
	if len(rows) == 0 {
		return nil, nil
	}
	// Skip the header row so positions line up with the Sheets backend.
	return rows[1:], nil
}

func (s *LocalStore) ReadCell(ctx context.Context, table string, rowIndex, col int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return "", err
	}

	rows := db[table]
	arrayIndex := rowIndex - 1
	if arrayIndex < 0 || arrayIndex >= len(rows) {
		return "", nil
	}
	row := rows[arrayIndex]
	if col < 0 || col >= len(row) {
		return "", nil
	}
	return row[col], nil
}

func (s *LocalStore) Append(ctx context.Context, table string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return err
	}

	db[table] = append(db[table], row)
	return s.save(db)
}

func (s *LocalStore) Update(ctx context.Context, table string, rowIndex int, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return err
	}

	rows := db[table]
	arrayIndex := rowIndex - 1
	if arrayIndex < 0 || arrayIndex >= len(rows) {
		logger.Log.Warn().Str("table", table).Int("rowIndex", rowIndex).Msg("Row not found, skipping update")
		return nil
	}

	rows[arrayIndex] = row
	db[table] = rows
	return s.save(db)
}

func (s *LocalStore) Clear(ctx context.Context, table string, rowIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return err
	}

	rows := db[table]
	arrayIndex := rowIndex - 1
	if arrayIndex < 0 || arrayIndex >= len(rows) {
		logger.Log.Warn().Str("table", table).Int("rowIndex", rowIndex).Msg("Row not found, skipping clear")
		return nil
	}

	db[table] = append(rows[:arrayIndex], rows[arrayIndex+1:]...)
	return s.save(db)
}
