package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/reboundcg/lead-portal/internal/entity"
)

// NoteUseCase manages the note thread on a lead. The thread is persisted
// and displayed most-recent-first.
type NoteUseCase struct {
	Notes entity.NoteRepositoryInterface
	Log   *slog.Logger
}

func NewNoteUseCase(notes entity.NoteRepositoryInterface, log *slog.Logger) *NoteUseCase {
	return &NoteUseCase{Notes: notes, Log: log}
}

func (uc *NoteUseCase) Add(ctx context.Context, leadID, text string, author entity.User) (*entity.Note, error) {
	note, err := entity.NewNote(leadID, text, author.Name)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Notes.Create(ctx, note); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to save note", Cause: err}
	}
	return note, nil
}

// Edit overwrites the note text in place; the original creation time is
// preserved and no update timestamp is kept.
func (uc *NoteUseCase) Edit(ctx context.Context, noteID, text string) error {
	if strings.TrimSpace(text) == "" {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "note text is required"}
	}

	if err := uc.Notes.UpdateText(ctx, noteID, text); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update note", Cause: err}
	}
	return nil
}

func (uc *NoteUseCase) Delete(ctx context.Context, noteID string) error {
	if err := uc.Notes.Delete(ctx, noteID); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to delete note", Cause: err}
	}
	return nil
}

// Thread loads a lead's notes, most recent first. A read failure degrades to
// an empty thread rather than blocking the lead view.
func (uc *NoteUseCase) Thread(ctx context.Context, leadID string) []entity.Note {
	notes, err := uc.Notes.FindByLeadID(ctx, leadID)
	if err != nil {
		uc.Log.Error("note load failed", "lead_id", leadID, "err", err)
		return nil
	}
	return notes
}
