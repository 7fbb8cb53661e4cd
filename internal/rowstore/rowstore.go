// Package rowstore abstracts a named table as an ordered sequence of rows.
// Rows are addressed by their 1-based position with the header occupying
// row 1, so the first data row is row 2. Row identity is positional: any
// append or delete shifts the effective index of every later row. There is
// no locking or optimistic concurrency; a single logical editor per dataset
// is assumed.
package rowstore

import "context"

// RowStore is the persistence contract shared by the Google Sheets backend
// and the local development backend.
type RowStore interface {
	// Read returns all data rows of the table (header excluded). The row at
	// result index i lives at table position i+2.
	Read(ctx context.Context, table string) ([][]string, error)
	// ReadCell returns a single cell by absolute row index and 0-based column.
	ReadCell(ctx context.Context, table string, rowIndex, col int) (string, error)
	// Append adds a row after the last existing row.
	Append(ctx context.Context, table string, row []string) error
	// Update overwrites the full row at rowIndex.
	Update(ctx context.Context, table string, rowIndex int, row []string) error
	// Clear removes the row at rowIndex; later rows shift up by one.
	Clear(ctx context.Context, table string, rowIndex int) error
}

// lastColumn maps each table to the letter of its final column, used to
// build A1 ranges.
var lastColumn = map[string]string{
	"Users":      "B",
	"Categories": "C",
	"Roles":      "C",
	"Notes":      "H",
}
