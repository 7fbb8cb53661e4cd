package models

import "strconv"

// Sheet (table) names. Each table keeps its header in row 1, so the first
// data row is row 2.
const (
	TableUsers      = "Users"
	TableCategories = "Categories"
	TableRoles      = "Roles"
	TableNotes      = "Notes"
)

const (
	DefaultCategoryTarget = 10
	DefaultRoleTarget     = 5
)

// Note is one journal entry. RowIndex is the 1-based position in the Notes
// table including the header offset; it is recomputed on every read and is
// not stable across inserts or deletes of earlier rows.
type Note struct {
	RowIndex  int    `json:"rowIndex"`
	ID        string `json:"id"`
	Date      string `json:"date"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	Role      string `json:"role"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	EventID   string `json:"eventId"`
}

// Row serializes the note into the Notes table column order (A:H).
func (n Note) Row() []string {
	return []string{n.ID, n.Date, n.Category, n.Content, n.Role, n.StartTime, n.EndTime, n.EventID}
}

// NoteFromRow builds a Note from a raw table row. Short rows are tolerated:
// missing trailing cells come back as empty strings.
func NoteFromRow(rowIndex int, row []string) Note {
	return Note{
		RowIndex:  rowIndex,
		ID:        cell(row, 0),
		Date:      cell(row, 1),
		Category:  cell(row, 2),
		Content:   cell(row, 3),
		Role:      cell(row, 4),
		StartTime: cell(row, 5),
		EndTime:   cell(row, 6),
		EventID:   cell(row, 7),
	}
}

// Category is a read-only catalog entry with a monthly note target.
type Category struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Target int    `json:"target"`
}

func CategoryFromRow(row []string) Category {
	return Category{
		Name:   cell(row, 0),
		Color:  cell(row, 1),
		Target: parseTarget(cell(row, 2), DefaultCategoryTarget),
	}
}

// Role is a read-only catalog entry describing a personal goal.
type Role struct {
	Name        string `json:"name"`
	Target      int    `json:"target"`
	Description string `json:"description"`
}

func RoleFromRow(row []string) Role {
	return Role{
		Name:        cell(row, 0),
		Target:      parseTarget(cell(row, 1), DefaultRoleTarget),
		Description: cell(row, 2),
	}
}

// User is a row in the Users table.
type User struct {
	Username     string
	PasswordHash string
}

func UserFromRow(row []string) User {
	return User{
		Username:     cell(row, 0),
		PasswordHash: cell(row, 1),
	}
}

func (u User) Row() []string {
	return []string{u.Username, u.PasswordHash}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseTarget falls back to the catalog default when the stored value is
// absent or not numeric.
func parseTarget(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
