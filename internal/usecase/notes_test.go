package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reboundcg/lead-portal/internal/entity"
)

func TestNoteUseCase(t *testing.T) {
	ctx := context.Background()
	author := entity.User{ID: "u-op", Name: "Omar", Role: entity.RoleUser}

	t.Run("Add Attributes The Author By Name", func(t *testing.T) {
		notes := new(MockNoteRepository)
		notes.On("Create", ctx, mock.MatchedBy(func(n *entity.Note) bool {
			return n.LeadID == "lead-1" && n.Text == "left voicemail" && n.Author == "Omar"
		})).Return(nil)

		uc := NewNoteUseCase(notes, testLogger())
		note, err := uc.Add(ctx, "lead-1", "left voicemail", author)

		assert.NoError(t, err)
		assert.NotEmpty(t, note.ID)
		notes.AssertExpectations(t)
	})

	t.Run("Add Rejects Blank Text", func(t *testing.T) {
		notes := new(MockNoteRepository)

		uc := NewNoteUseCase(notes, testLogger())
		_, err := uc.Add(ctx, "lead-1", "   ", author)

		assert.True(t, IsDomainError(err))
		notes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Edit Rejects Blank Replacement", func(t *testing.T) {
		notes := new(MockNoteRepository)

		uc := NewNoteUseCase(notes, testLogger())
		err := uc.Edit(ctx, "note-1", "")

		assert.True(t, IsDomainError(err))
		notes.AssertNotCalled(t, "UpdateText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Edit Overwrites In Place", func(t *testing.T) {
		notes := new(MockNoteRepository)
		notes.On("UpdateText", ctx, "note-1", "corrected").Return(nil)

		uc := NewNoteUseCase(notes, testLogger())
		assert.NoError(t, uc.Edit(ctx, "note-1", "corrected"))
		notes.AssertExpectations(t)
	})

	t.Run("Thread Is Most Recent First", func(t *testing.T) {
		now := time.Now()
		notes := new(MockNoteRepository)
		notes.On("FindByLeadID", ctx, "lead-1").Return([]entity.Note{
			{ID: "n2", CreatedAt: now},
			{ID: "n1", CreatedAt: now.Add(-time.Hour)},
		}, nil)

		uc := NewNoteUseCase(notes, testLogger())
		thread := uc.Thread(ctx, "lead-1")

		assert.Equal(t, "n2", thread[0].ID)
	})

	t.Run("Thread Degrades To Empty On Read Failure", func(t *testing.T) {
		notes := new(MockNoteRepository)
		notes.On("FindByLeadID", ctx, "lead-1").Return(nil, errors.New("read timeout"))

		uc := NewNoteUseCase(notes, testLogger())
		assert.Nil(t, uc.Thread(ctx, "lead-1"))
	})

	t.Run("Delete Propagates Store Failure", func(t *testing.T) {
		notes := new(MockNoteRepository)
		notes.On("Delete", ctx, "note-9").Return(errors.New("db down"))

		uc := NewNoteUseCase(notes, testLogger())
		assert.True(t, IsTechnicalError(uc.Delete(ctx, "note-9")))
	})
}
