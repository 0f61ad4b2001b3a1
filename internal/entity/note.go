package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNoteTextRequired = errors.New("note text is required")

// Note is a timestamped free-text entry on a lead. Author is a display name,
// not an operator id. Edits overwrite Text in place and keep CreatedAt.
type Note struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNote(leadID, text, author string) (*Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoteTextRequired
	}

	return &Note{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
	}, nil
}

type NoteRepositoryInterface interface {
	Create(ctx context.Context, note *Note) error
	FindByLeadID(ctx context.Context, leadID string) ([]Note, error)
	UpdateText(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
}
