package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/calendar"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/models"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/rowstore"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
)

// eventIDCol is the 0-based column of the eventId cell in the Notes table.
const eventIDCol = 7

// NoteInput is the payload of a create or update request.
type NoteInput struct {
	ID             string
	Date           string
	Category       string
	Content        string
	Role           string
	StartTime      string
	EndTime        string
	SyncToCalendar bool
	Recurrence     string
}

// wantsSync reports whether the note should have a mirrored calendar event:
// the sync flag plus both times present.
func (in NoteInput) wantsSync() bool {
	return in.SyncToCalendar && in.StartTime != "" && in.EndTime != ""
}

func (in NoteInput) event() calendar.Event {
	return calendar.Event{
		Category:  in.Category,
		Role:      in.Role,
		Content:   in.Content,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
}

// NoteService orchestrates note persistence against the row store and the
// best-effort mirroring of timed notes into the calendar. Store failures
// abort the operation; calendar failures are logged and swallowed so that
// note persistence always wins.
type NoteService struct {
	store rowstore.RowStore
	cal   calendar.Calendar
}

func NewNoteService(store rowstore.RowStore, cal calendar.Calendar) *NoteService {
	return &NoteService{store: store, cal: cal}
}

// List returns all notes with their current 1-based row positions
// (first data row is 2, after the header).
func (s *NoteService) List(ctx context.Context) ([]models.Note, error) {
	rows, err := s.store.Read(ctx, models.TableNotes)
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0, len(rows))
	for i, row := range rows {
		notes = append(notes, models.NoteFromRow(i+2, row))
	}
	return notes, nil
}

// Create appends a new note row. When the note is calendar-eligible the
// event is inserted first so the returned ID can be stored with the row;
// an insert failure leaves eventId empty and the note is saved anyway.
// Recurrence is applied on create only.
func (s *NoteService) Create(ctx context.Context, in NoteInput) (string, error) {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	eventID := ""
	if in.wantsSync() {
		ev := in.event()
		ev.Recurrence = in.Recurrence

		id, err := s.cal.Insert(ctx, ev)
		if err != nil {
			logger.Log.Error().Err(err).Str("noteId", in.ID).Msg("Calendar sync failed")
		} else {
			eventID = id
			logger.Log.Info().Str("eventId", eventID).Msg("Calendar event created")
		}
	}

	note := models.Note{
		ID:        in.ID,
		Date:      in.Date,
		Category:  in.Category,
		Content:   in.Content,
		Role:      in.Role,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		EventID:   eventID,
	}
	if err := s.store.Append(ctx, models.TableNotes, note.Row()); err != nil {
		return "", err
	}
	return eventID, nil
}

// Update overwrites the note row at rowIndex. The stored eventId is read
// back first (a second store round-trip), then reconciled against the
// desired sync state:
//
//	no event, wants sync    -> insert, store the new id
//	no event, no sync       -> nothing
//	has event, wants sync   -> update the event in place
//	has event, no sync      -> delete the event, clear the stored id
//
// The read-then-write pair is not atomic; a concurrent editor between the
// two steps is unguarded.
func (s *NoteService) Update(ctx context.Context, rowIndex int, in NoteInput) error {
	existingEventID, err := s.store.ReadCell(ctx, models.TableNotes, rowIndex, eventIDCol)
	if err != nil {
		return err
	}

	finalEventID := existingEventID

	if in.wantsSync() {
		ev := in.event()
		if existingEventID != "" {
			if err := s.cal.Update(ctx, existingEventID, ev); err != nil {
				logger.Log.Error().Err(err).Str("eventId", existingEventID).Msg("Update calendar failed")
			}
		} else {
			id, err := s.cal.Insert(ctx, ev)
			if err != nil {
				logger.Log.Error().Err(err).Msg("Insert calendar failed")
			} else {
				finalEventID = id
			}
		}
	} else if (!in.SyncToCalendar || in.StartTime == "") && existingEventID != "" {
		if err := s.cal.Delete(ctx, existingEventID); err != nil {
			logger.Log.Error().Err(err).Str("eventId", existingEventID).Msg("Delete calendar failed")
		} else {
			finalEventID = ""
		}
	}

	note := models.Note{
		ID:        in.ID,
		Date:      in.Date,
		Category:  in.Category,
		Content:   in.Content,
		Role:      in.Role,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		EventID:   finalEventID,
	}
	return s.store.Update(ctx, models.TableNotes, rowIndex, note.Row())
}

// Delete removes the note row at rowIndex. If the row carries an eventId
// the calendar delete is attempted first, but the row is removed regardless
// of its outcome; a failed calendar delete can orphan the remote event.
func (s *NoteService) Delete(ctx context.Context, rowIndex int) error {
	eventID, err := s.store.ReadCell(ctx, models.TableNotes, rowIndex, eventIDCol)
	if err != nil {
		return err
	}

	if eventID != "" {
		if err := s.cal.Delete(ctx, eventID); err != nil {
			logger.Log.Warn().Err(err).Str("eventId", eventID).Msg("Calendar delete failed")
		}
	}

	return s.store.Clear(ctx, models.TableNotes, rowIndex)
}
