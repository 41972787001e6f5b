package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/apimodel"
	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/service/journal"
)

type journalService interface {
	AddNote(ctx context.Context, userID uuid.UUID, date time.Time, content string) (*domain.Note, error)
	GetNote(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.Note, error)
	ListNoteDates(ctx context.Context, userID uuid.UUID) ([]string, error)

	AddDiaryEntry(ctx context.Context, userID uuid.UUID, input journal.DiaryEntryInput) (*domain.DiaryEntry, error)
	GetDiaryEntries(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	DeleteDiaryEntry(ctx context.Context, userID, id uuid.UUID) error

	SetSleepSchedule(ctx context.Context, userID uuid.UUID, input journal.SleepScheduleInput) (*domain.SleepSchedule, error)
	GetSleepSchedule(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error)
}

// JournalHandler serves notes, diary and sleep endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

// ---------------------------------------------------------------------------
// Notes
// ---------------------------------------------------------------------------

// ListNoteDates handles GET /api/notes.
func (h *JournalHandler) ListNoteDates(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	days, err := h.svc.ListNoteDates(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if days == nil {
		days = []string{}
	}
	writeJSON(w, http.StatusOK, apimodel.NoteDates{Dates: days})
}

// GetNote handles GET /api/notes/{date}. A day without a note is 200 null.
func (h *JournalHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	day, ok := pathDay(w, r)
	if !ok {
		return
	}

	note, err := h.svc.GetNote(r.Context(), uid, day)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.FromNote(note))
}

// PutNote handles PUT /api/notes/{date}.
func (h *JournalHandler) PutNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	day, ok := pathDay(w, r)
	if !ok {
		return
	}

	var req apimodel.NoteRequest
	if !decode(w, r, &req) {
		return
	}

	note, err := h.svc.AddNote(r.Context(), uid, day, req.Content)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.FromNote(note))
}

func pathDay(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	day, err := domain.ParseDay(r.PathValue("date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apimodel.Error{
			Error:  "validation: date: must be YYYY-MM-DD",
			Fields: []apimodel.FieldError{{Field: "date", Message: "must be YYYY-MM-DD"}},
		})
		return time.Time{}, false
	}
	return day, true
}

// ---------------------------------------------------------------------------
// Diary
// ---------------------------------------------------------------------------

// ListDiary handles GET /api/diary.
func (h *JournalHandler) ListDiary(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.GetDiaryEntries(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]apimodel.DiaryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, apimodel.FromDiaryEntry(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// AddDiary handles POST /api/diary.
func (h *JournalHandler) AddDiary(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req apimodel.DiaryEntryRequest
	if !decode(w, r, &req) {
		return
	}

	entry, err := h.svc.AddDiaryEntry(r.Context(), uid, journal.DiaryEntryInput{Title: req.Title, Content: req.Content})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, apimodel.FromDiaryEntry(*entry))
}

// DeleteDiary handles DELETE /api/diary/{id}.
func (h *JournalHandler) DeleteDiary(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDiaryEntry(r.Context(), uid, id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Sleep
// ---------------------------------------------------------------------------

// GetSleep handles GET /api/sleep. No schedule is 200 null.
func (h *JournalHandler) GetSleep(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.GetSleepSchedule(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.FromSleepSchedule(s))
}

// PutSleep handles PUT /api/sleep.
func (h *JournalHandler) PutSleep(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req apimodel.SleepSchedule
	if !decode(w, r, &req) {
		return
	}

	s, err := h.svc.SetSleepSchedule(r.Context(), uid, journal.SleepScheduleInput{
		Bedtime:  req.Bedtime,
		WakeTime: req.WakeTime,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apimodel.FromSleepSchedule(s))
}
