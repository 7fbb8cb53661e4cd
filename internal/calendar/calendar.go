// Package calendar abstracts the remote calendar that timed notes are
// mirrored into. All calls are best-effort from the caller's point of view:
// failures are logged by the owning service and never block note persistence.
package calendar

import (
	"context"
	"fmt"
)

// Event carries everything needed to mirror a note as a calendar event.
type Event struct {
	Category  string
	Role      string
	Content   string
	Date      string // ISO date, e.g. 2024-05-01
	StartTime string // HH:MM
	EndTime   string // HH:MM
	// Recurrence is a frequency keyword (DAILY, WEEKLY, MONTHLY) applied on
	// insert only; empty or "none" means a one-off event.
	Recurrence string
}

// Calendar is the remote calendar contract.
type Calendar interface {
	// Insert creates an event and returns its opaque ID.
	Insert(ctx context.Context, ev Event) (string, error)
	Update(ctx context.Context, eventID string, ev Event) error
	Delete(ctx context.Context, eventID string) error
}

// Summary renders the event title: category tag, optional role prefix and
// the first 20 runes of the content.
func (e Event) Summary() string {
	content := []rune(e.Content)
	if len(content) > 20 {
		content = content[:20]
	}
	rolePrefix := ""
	if e.Role != "" {
		rolePrefix = e.Role + "-"
	}
	return fmt.Sprintf("[%s] %s%s...", e.Category, rolePrefix, string(content))
}

// RecurrenceRule translates the frequency keyword into an RRULE expression,
// or returns nil for one-off events.
func (e Event) RecurrenceRule() []string {
	if e.Recurrence == "" || e.Recurrence == "none" {
		return nil
	}
	return []string{fmt.Sprintf("RRULE:FREQ=%s", e.Recurrence)}
}
