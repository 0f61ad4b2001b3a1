package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reboundcg/lead-portal/internal/entity"
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	lead := entity.Lead{
		ID: "l1", CaseNumber: "2024-CA-001", County: "FL-MiamiDade",
		LeadType: entity.LeadTypeSurplus, AuctionDate: "2025-01-10",
		PropertyAddress: "100 Ocean Dr", Surplus: "$50,000",
		Defendants: "DOE, JOHN", Status: entity.StatusContacted,
	}

	t.Run("Export Uses The External Field Names", func(t *testing.T) {
		uc := NewTransferUseCase(new(MockLeadRepository))
		data, err := uc.Export([]entity.Lead{lead})

		assert.NoError(t, err)
		var rows []map[string]any
		assert.NoError(t, json.Unmarshal(data, &rows))
		assert.Equal(t, "2024-CA-001", rows[0]["caseNumber"])
		assert.Equal(t, "100 Ocean Dr", rows[0]["propertyAddress"])
		assert.NotContains(t, rows[0], "case_number")
	})

	t.Run("Import Of An Export Is An Identity Upsert", func(t *testing.T) {
		leads := new(MockLeadRepository)
		leads.On("Upsert", ctx, mock.MatchedBy(func(l *entity.Lead) bool {
			return l.ID == lead.ID &&
				l.CaseNumber == lead.CaseNumber &&
				l.County == lead.County &&
				l.Surplus == lead.Surplus &&
				l.Status == lead.Status
		})).Return(nil).Once()

		uc := NewTransferUseCase(leads)
		data, err := uc.Export([]entity.Lead{lead})
		assert.NoError(t, err)

		count, err := uc.Import(ctx, data)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		leads.AssertExpectations(t)
	})

	t.Run("Missing Status Defaults To New", func(t *testing.T) {
		leads := new(MockLeadRepository)
		leads.On("Upsert", ctx, mock.MatchedBy(func(l *entity.Lead) bool {
			return l.Status == entity.StatusNew
		})).Return(nil)

		uc := NewTransferUseCase(leads)
		count, err := uc.Import(ctx, []byte(`[{"id":"l9","caseNumber":"2024-CA-009"}]`))

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Malformed Payload Is One Invalid Input Failure", func(t *testing.T) {
		leads := new(MockLeadRepository)

		uc := NewTransferUseCase(leads)
		_, err := uc.Import(ctx, []byte(`{"not":"an array"`))

		assert.True(t, IsDomainError(err))
		leads.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Row Without ID Rejects The Whole Batch", func(t *testing.T) {
		leads := new(MockLeadRepository)

		uc := NewTransferUseCase(leads)
		_, err := uc.Import(ctx, []byte(`[{"id":"l1"},{"caseNumber":"2024-CA-002"}]`))

		assert.True(t, IsDomainError(err))
		leads.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Store Failure Reports How Many Landed", func(t *testing.T) {
		leads := new(MockLeadRepository)
		leads.On("Upsert", ctx, mock.MatchedBy(func(l *entity.Lead) bool { return l.ID == "l1" })).Return(nil)
		leads.On("Upsert", ctx, mock.MatchedBy(func(l *entity.Lead) bool { return l.ID == "l2" })).Return(errors.New("db down"))

		uc := NewTransferUseCase(leads)
		count, err := uc.Import(ctx, []byte(`[{"id":"l1"},{"id":"l2"},{"id":"l3"}]`))

		assert.True(t, IsTechnicalError(err))
		assert.Equal(t, 1, count)
	})
}
