package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/usecase"
)

func newSkipTraceHandler(leads *MockLeadRepository, contacts *MockContactRepository) *SkipTraceHandler {
	return NewSkipTraceHandler(usecase.NewSaveSkipTraceUseCase(leads, contacts, nil, testLogger()))
}

func TestSkipTraceSave(t *testing.T) {
	t.Run("Created With Primary Contact", func(t *testing.T) {
		leads := new(MockLeadRepository)
		contacts := new(MockContactRepository)

		leads.On("FindByID", mock.Anything, "l1").Return(&entity.Lead{ID: "l1", CaseNumber: "2024-CA-001"}, nil)
		contacts.On("CreateContact", mock.Anything, mock.Anything).Return(nil)
		contacts.On("CreatePhones", mock.Anything, mock.Anything).Return(nil)
		leads.On("UpdateSkipTrace", mock.Anything, "l1", entity.SkipTraceCompleted, mock.Anything, mock.Anything).Return(nil)
		contacts.On("FindGraphByLeadID", mock.Anything, "l1").Return([]entity.ContactGraph{}, nil)

		body := `{"full_name":"Jane Doe","phones":[{"number":"555-1000","type":"mobile"}]}`
		w := httptest.NewRecorder()
		newSkipTraceHandler(leads, contacts).Save(w, request(http.MethodPost, body, plainUser, "l1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		var output usecase.SkipTraceOutput
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &output))
		assert.NotEmpty(t, output.PrimaryContactID)
	})

	t.Run("Missing Name Is Bad Request", func(t *testing.T) {
		w := httptest.NewRecorder()
		newSkipTraceHandler(new(MockLeadRepository), new(MockContactRepository)).
			Save(w, request(http.MethodPost, `{"full_name":""}`, plainUser, "l1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Partial Save Names The Failed Step", func(t *testing.T) {
		leads := new(MockLeadRepository)
		contacts := new(MockContactRepository)

		leads.On("FindByID", mock.Anything, "l1").Return(&entity.Lead{ID: "l1"}, nil)
		contacts.On("CreateContact", mock.Anything, mock.Anything).Return(nil)
		contacts.On("CreatePhones", mock.Anything, mock.Anything).Return(errors.New("db down"))

		body := `{"full_name":"Jane Doe","phones":[{"number":"555-1000"}]}`
		w := httptest.NewRecorder()
		newSkipTraceHandler(leads, contacts).Save(w, request(http.MethodPost, body, plainUser, "l1"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp struct {
			Step      string   `json:"step"`
			Completed []string `json:"completed"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "create_phones", resp.Step)
		assert.Equal(t, []string{"create_contact"}, resp.Completed)
	})

	t.Run("Invalid JSON Is Bad Request", func(t *testing.T) {
		w := httptest.NewRecorder()
		newSkipTraceHandler(new(MockLeadRepository), new(MockContactRepository)).
			Save(w, request(http.MethodPost, `{"full_name":`, plainUser, "l1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
