package calendar

import (
	"context"
	"fmt"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendar implements Calendar against the Google Calendar API.
type GoogleCalendar struct {
	srv        *gcal.Service
	calendarID string
	timezone   string
}

// NewGoogleCalendar builds a Calendar client from a service-account
// credentials file. calendarID is usually "primary".
func NewGoogleCalendar(ctx context.Context, calendarID, credentialsFile, timezone string) (*GoogleCalendar, error) {
	srv, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}

	return &GoogleCalendar{
		srv:        srv,
		calendarID: calendarID,
		timezone:   timezone,
	}, nil
}

func (g *GoogleCalendar) Insert(ctx context.Context, ev Event) (string, error) {
	created, err := g.srv.Events.Insert(g.calendarID, g.event(ev)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}
	return created.Id, nil
}

func (g *GoogleCalendar) Update(ctx context.Context, eventID string, ev Event) error {
	if _, err := g.srv.Events.Update(g.calendarID, eventID, g.event(ev)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update event %s: %w", eventID, err)
	}
	return nil
}

func (g *GoogleCalendar) Delete(ctx context.Context, eventID string) error {
	if err := g.srv.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	return nil
}

func (g *GoogleCalendar) event(ev Event) *gcal.Event {
	return &gcal.Event{
		Summary:     ev.Summary(),
		Description: ev.Content,
		Start: &gcal.EventDateTime{
			DateTime: fmt.Sprintf("%sT%s:00", ev.Date, ev.StartTime),
			TimeZone: g.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: fmt.Sprintf("%sT%s:00", ev.Date, ev.EndTime),
			TimeZone: g.timezone,
		},
		Recurrence: ev.RecurrenceRule(),
	}
}
