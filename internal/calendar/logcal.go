package calendar

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
)

// LogCalendar is the local development calendar: it only logs what would
// have happened and hands out fake event IDs.
type LogCalendar struct{}

func NewLogCalendar() *LogCalendar {
	return &LogCalendar{}
}

func (l *LogCalendar) Insert(ctx context.Context, ev Event) (string, error) {
	id := fmt.Sprintf("mock_event_%d_%d", time.Now().UnixMilli(), rand.Intn(1000))
	logger.Log.Info().
		Str("summary", ev.Summary()).
		Str("start", ev.Date+"T"+ev.StartTime).
		Str("end", ev.Date+"T"+ev.EndTime).
		Str("eventId", id).
		Msg("Mock calendar event created")
	return id, nil
}

func (l *LogCalendar) Update(ctx context.Context, eventID string, ev Event) error {
	logger.Log.Info().
		Str("eventId", eventID).
		Str("summary", ev.Summary()).
		Msg("Mock calendar event updated")
	return nil
}

func (l *LogCalendar) Delete(ctx context.Context, eventID string) error {
	logger.Log.Info().Str("eventId", eventID).Msg("Mock calendar event deleted")
	return nil
}
