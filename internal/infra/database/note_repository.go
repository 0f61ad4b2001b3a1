package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/reboundcg/lead-portal/internal/entity"
)

type NoteRepository struct {
	DB *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	query := `INSERT INTO notes (id, lead_id, text, author, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, note.ID, note.LeadID, note.Text, note.Author, note.CreatedAt)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// FindByLeadID returns the thread most-recent-first, which is both the
// persisted and the displayed order.
func (r *NoteRepository) FindByLeadID(ctx context.Context, leadID string) ([]entity.Note, error) {
	query := `SELECT id, lead_id, text, author, created_at FROM notes WHERE lead_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.LeadID, &n.Text, &n.Author, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// UpdateText overwrites the text in place. created_at is left alone: edits
// keep the original timestamp.
func (r *NoteRepository) UpdateText(ctx context.Context, id, text string) error {
	query := `UPDATE notes SET text = $2 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, text)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM notes WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
