package usecase

import (
	"context"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/infra/queue"
)

type ContactRepositoryInterface interface {
	CreateContact(ctx context.Context, c *entity.Contact) error
	CreatePhones(ctx context.Context, phones []entity.PhoneNumber) error
	CreateEmails(ctx context.Context, emails []entity.Email) error
	CreateAddress(ctx context.Context, addr *entity.Address) error
	CreateRelativeLink(ctx context.Context, link *entity.RelativeLink) error
	FindGraphByLeadID(ctx context.Context, leadID string) ([]entity.ContactGraph, error)
}

type UserRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type QueueProducerInterface interface {
	PublishSkipTrace(ctx context.Context, payload queue.SkipTracePayload) error
}
