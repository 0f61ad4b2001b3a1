package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/infra/queue"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateAssignee(ctx context.Context, id, operatorID string) error {
	args := m.Called(ctx, id, operatorID)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateSkipTrace(ctx context.Context, id, status string, tracedAt time.Time, primaryContactID string) error {
	args := m.Called(ctx, id, status, tracedAt, primaryContactID)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) CreateContact(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) CreatePhones(ctx context.Context, phones []entity.PhoneNumber) error {
	args := m.Called(ctx, phones)
	return args.Error(0)
}

func (m *MockContactRepository) CreateEmails(ctx context.Context, emails []entity.Email) error {
	args := m.Called(ctx, emails)
	return args.Error(0)
}

func (m *MockContactRepository) CreateAddress(ctx context.Context, addr *entity.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

func (m *MockContactRepository) CreateRelativeLink(ctx context.Context, link *entity.RelativeLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockContactRepository) FindGraphByLeadID(ctx context.Context, leadID string) ([]entity.ContactGraph, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ContactGraph), args.Error(1)
}

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByLeadID(ctx context.Context, leadID string) ([]entity.Note, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Note), args.Error(1)
}

func (m *MockNoteRepository) UpdateText(ctx context.Context, noteID, text string) error {
	args := m.Called(ctx, noteID, text)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, noteID string) error {
	args := m.Called(ctx, noteID)
	return args.Error(0)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishSkipTrace(ctx context.Context, payload queue.SkipTracePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
