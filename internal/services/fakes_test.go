package services

import (
	"context"
	"errors"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/calendar"
)

// fakeStore is an in-memory RowStore. tables holds raw rows including the
// header row so positions line up with the real backends.
type fakeStore struct {
	tables map[string][][]string

	readErr   error
	appendErr error
	updateErr error
	clearErr  error

	readCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][][]string{
		"Notes": {{"id", "date", "category", "content", "role", "startTime", "endTime", "eventId"}},
		"Users": {{"username", "passwordHash"}},
	}}
}

func (f *fakeStore) Read(ctx context.Context, table string) ([][]string, error) {
	f.readCalls++
	if f.readErr != nil {
		return nil, f.readErr
	}
	rows := f.tables[table]
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func (f *fakeStore) ReadCell(ctx context.Context, table string, rowIndex, col int) (string, error) {
	f.readCalls++
	if f.readErr != nil {
		return "", f.readErr
	}
	rows := f.tables[table]
	i := rowIndex - 1
	if i < 0 || i >= len(rows) || col >= len(rows[i]) {
		return "", nil
	}
	return rows[i][col], nil
}

func (f *fakeStore) Append(ctx context.Context, table string, row []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.tables[table] = append(f.tables[table], row)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, table string, rowIndex int, row []string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	rows := f.tables[table]
	i := rowIndex - 1
	if i < 0 || i >= len(rows) {
		return nil
	}
	rows[i] = row
	return nil
}

func (f *fakeStore) Clear(ctx context.Context, table string, rowIndex int) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	rows := f.tables[table]
	i := rowIndex - 1
	if i < 0 || i >= len(rows) {
		return nil
	}
	f.tables[table] = append(rows[:i], rows[i+1:]...)
	return nil
}

// row returns the raw row at the absolute table position.
func (f *fakeStore) row(table string, rowIndex int) []string {
	return f.tables[table][rowIndex-1]
}

func (f *fakeStore) rowCount(table string) int {
	return len(f.tables[table]) - 1 // minus header
}

// fakeCalendar records calls and can be told to fail.
type fakeCalendar struct {
	insertCalls int
	updateCalls int
	deleteCalls int

	insertErr error
	updateErr error
	deleteErr error

	nextID     string
	lastInsert calendar.Event
	lastUpdate calendar.Event
	deletedIDs []string
}

func (f *fakeCalendar) Insert(ctx context.Context, ev calendar.Event) (string, error) {
	f.insertCalls++
	f.lastInsert = ev
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if f.nextID == "" {
		return "evt_new", nil
	}
	return f.nextID, nil
}

func (f *fakeCalendar) Update(ctx context.Context, eventID string, ev calendar.Event) error {
	f.updateCalls++
	f.lastUpdate = ev
	return f.updateErr
}

func (f *fakeCalendar) Delete(ctx context.Context, eventID string) error {
	f.deleteCalls++
	f.deletedIDs = append(f.deletedIDs, eventID)
	return f.deleteErr
}

var errRemote = errors.New("remote unavailable")
