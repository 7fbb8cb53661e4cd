// Package stats computes the monthly progress roll-up: per catalog entry,
// how many notes fell in the target month versus the configured target.
// Pure functions, recomputed on every request, nothing persisted.
package stats

import (
	"strings"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/models"
)

// Progress is one catalog entry's roll-up for a month.
type Progress struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	Target      int    `json:"target"`
	Percentage  int    `json:"percentage"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// CategoryProgress counts, for each category, the notes labeled with it
// whose date falls in month ("YYYY-MM"). Percentage is capped at 100.
func CategoryProgress(categories []models.Category, notes []models.Note, month string) []Progress {
	counts := countNotes(notes, month, func(n models.Note) string { return n.Category })
	result := make([]Progress, 0, len(categories))
	for _, cat := range categories {
		count := counts[cat.Name]
		result = append(result, Progress{
			Name:       cat.Name,
			Count:      count,
			Target:     cat.Target,
			Percentage: percentage(count, cat.Target),
			Color:      cat.Color,
		})
	}
	return result
}

// RoleProgress is the same roll-up keyed by the notes' role label.
func RoleProgress(roles []models.Role, notes []models.Note, month string) []Progress {
	counts := countNotes(notes, month, func(n models.Note) string { return n.Role })
	result := make([]Progress, 0, len(roles))
	for _, role := range roles {
		count := counts[role.Name]
		result = append(result, Progress{
			Name:        role.Name,
			Count:       count,
			Target:      role.Target,
			Percentage:  percentage(count, role.Target),
			Description: role.Description,
		})
	}
	return result
}

func countNotes(notes []models.Note, month string, key func(models.Note) string) map[string]int {
	counts := make(map[string]int)
	for _, n := range notes {
		if strings.HasPrefix(n.Date, month) {
			counts[key(n)]++
		}
	}
	return counts
}

func percentage(count, target int) int {
	if target <= 0 {
		return 100
	}
	p := count * 100 / target
	if p > 100 {
		return 100
	}
	return p
}
