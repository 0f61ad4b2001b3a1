package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/infra/queue"
)

type PhoneInput struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type EmailInput struct {
	Email string `json:"email"`
	Type  string `json:"type"`
}

type RelativeInput struct {
	Name         string       `json:"name"`
	Relationship string       `json:"relationship"`
	Phones       []PhoneInput `json:"phones"`
}

// SkipTraceInput is the operator-filled contact-with-relatives form.
type SkipTraceInput struct {
	FullName  string          `json:"full_name"`
	Age       string          `json:"age"`
	Phones    []PhoneInput    `json:"phones"`
	Emails    []EmailInput    `json:"emails"`
	Address   string          `json:"address"`
	City      string          `json:"city"`
	State     string          `json:"state"`
	Zip       string          `json:"zip"`
	Notes     string          `json:"notes"`
	Relatives []RelativeInput `json:"relatives"`
}

type RelativeFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type SkipTraceOutput struct {
	PrimaryContactID string                `json:"primary_contact_id"`
	Contacts         []entity.ContactGraph `json:"contacts"`

	// FailedRelatives lists relatives whose sub-graph could not be written.
	// The save itself still succeeds; partial success is reported, not
	// hidden.
	FailedRelatives []RelativeFailure `json:"failed_relatives,omitempty"`
}

// SaveSkipTraceUseCase persists a freshly traced person and their relatives
// as one logical operation: contact, phones, emails, address, relative
// contacts and edges, then the owning lead's skip-trace status. The store
// offers no multi-row transaction, so the writes run as an ordered sequence
// and a failure reports which tiers already persisted.
type SaveSkipTraceUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Contacts ContactRepositoryInterface
	Queue    QueueProducerInterface
	Log      *slog.Logger
}

func NewSaveSkipTraceUseCase(
	leads entity.LeadRepositoryInterface,
	contacts ContactRepositoryInterface,
	producer QueueProducerInterface,
	log *slog.Logger,
) *SaveSkipTraceUseCase {
	return &SaveSkipTraceUseCase{
		Leads:    leads,
		Contacts: contacts,
		Queue:    producer,
		Log:      log,
	}
}

func (uc *SaveSkipTraceUseCase) Execute(ctx context.Context, leadID string, input SkipTraceInput, operator entity.User) (*SkipTraceOutput, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "full_name is required",
		}
	}

	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "LEAD_NOT_FOUND",
			Message: "lead lookup failed: " + err.Error(),
			Cause:   err,
		}
	}

	now := time.Now()

	contact, err := entity.NewContact(leadID, input.FullName, entity.ContactTypeDefendant)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	contact.Age = input.Age
	contact.Notes = input.Notes
	contact.CurrentAddress = input.Address
	contact.CurrentCity = input.City
	contact.CurrentState = input.State
	contact.CurrentZip = input.Zip
	contact.SkipTraced = true
	contact.SkipTraceDate = &now

	phones := buildPhones(contact.ID, input.Phones, true)
	emails := buildEmails(contact.ID, input.Emails)

	runner := NewStepRunner()
	runner.Add("create_contact", func(ctx context.Context) error {
		return uc.Contacts.CreateContact(ctx, contact)
	})
	if len(phones) > 0 {
		runner.Add("create_phones", func(ctx context.Context) error {
			return uc.Contacts.CreatePhones(ctx, phones)
		})
	}
	if len(emails) > 0 {
		runner.Add("create_emails", func(ctx context.Context) error {
			return uc.Contacts.CreateEmails(ctx, emails)
		})
	}
	if hasAddress(input) {
		addr := entity.NewCurrentAddress(contact.ID, input.Address, input.City, input.State, input.Zip)
		runner.Add("create_address", func(ctx context.Context) error {
			return uc.Contacts.CreateAddress(ctx, &addr)
		})
	}

	if err := runner.Run(ctx); err != nil {
		return nil, err
	}

	// Relative fan-out is best effort: one relative's failure must not
	// strand the rest. Failures are collected and reported by name.
	var failed []RelativeFailure
	for _, rel := range input.Relatives {
		if strings.TrimSpace(rel.Name) == "" {
			continue
		}
		if err := uc.saveRelative(ctx, leadID, contact.ID, rel); err != nil {
			uc.Log.Error("relative save failed", "lead_id", leadID, "relative", rel.Name, "err", err)
			failed = append(failed, RelativeFailure{Name: rel.Name, Reason: err.Error()})
			continue
		}
		runner.MarkCompleted("relative:" + rel.Name)
	}

	if err := uc.Leads.UpdateSkipTrace(ctx, leadID, entity.SkipTraceCompleted, now, contact.ID); err != nil {
		return nil, &PartialSaveError{
			Step:      "update_lead",
			Completed: runner.Completed(),
			Cause:     err,
		}
	}

	graphs, err := uc.Contacts.FindGraphByLeadID(ctx, leadID)
	if err != nil {
		// The graph is persisted at this point; a refetch failure only
		// degrades the refreshed view.
		uc.Log.Error("contact graph refetch failed", "lead_id", leadID, "err", err)
		graphs = nil
	}

	uc.publishNotice(ctx, lead, contact, operator, now)

	return &SkipTraceOutput{
		PrimaryContactID: contact.ID,
		Contacts:         graphs,
		FailedRelatives:  failed,
	}, nil
}

// saveRelative writes one relative sub-graph: the relative contact row, the
// edge from the primary contact, then the relative's phones. Steps within a
// single relative stay strictly ordered.
func (uc *SaveSkipTraceUseCase) saveRelative(ctx context.Context, leadID, sourceContactID string, rel RelativeInput) error {
	relContact, err := entity.NewContact(leadID, rel.Name, entity.ContactTypeRelative)
	if err != nil {
		return err
	}
	relContact.Relationship = rel.Relationship

	if err := uc.Contacts.CreateContact(ctx, relContact); err != nil {
		return fmt.Errorf("create relative contact: %w", err)
	}

	link := entity.NewRelativeLink(sourceContactID, relContact.ID, rel.Relationship)
	if err := uc.Contacts.CreateRelativeLink(ctx, &link); err != nil {
		return fmt.Errorf("create relative link: %w", err)
	}

	if phones := buildPhones(relContact.ID, rel.Phones, false); len(phones) > 0 {
		if err := uc.Contacts.CreatePhones(ctx, phones); err != nil {
			return fmt.Errorf("create relative phones: %w", err)
		}
	}
	return nil
}

func (uc *SaveSkipTraceUseCase) publishNotice(ctx context.Context, lead *entity.Lead, contact *entity.Contact, operator entity.User, completedAt time.Time) {
	if uc.Queue == nil {
		return
	}

	err := uc.Queue.PublishSkipTrace(ctx, queue.SkipTracePayload{
		LeadID:       lead.ID,
		CaseNumber:   lead.CaseNumber,
		ContactID:    contact.ID,
		ContactName:  contact.FullName,
		OperatorName: operator.Name,
		CompletedAt:  completedAt,
	})
	if err != nil {
		// The notice is advisory; never fail the save over it.
		uc.Log.Error("skip-trace notice publish failed", "lead_id", lead.ID, "err", err)
	}
}

// buildPhones keeps non-blank numbers only; when markPrimary is set the
// first kept number is flagged primary.
func buildPhones(contactID string, inputs []PhoneInput, markPrimary bool) []entity.PhoneNumber {
	var phones []entity.PhoneNumber
	for _, p := range inputs {
		if strings.TrimSpace(p.Number) == "" {
			continue
		}
		primary := markPrimary && len(phones) == 0
		phones = append(phones, entity.NewPhoneNumber(contactID, p.Number, p.Type, primary))
	}
	return phones
}

func buildEmails(contactID string, inputs []EmailInput) []entity.Email {
	var emails []entity.Email
	for _, e := range inputs {
		if strings.TrimSpace(e.Email) == "" {
			continue
		}
		emails = append(emails, entity.NewEmail(contactID, e.Email, e.Type, len(emails) == 0))
	}
	return emails
}

func hasAddress(input SkipTraceInput) bool {
	return strings.TrimSpace(input.Address) != "" ||
		strings.TrimSpace(input.City) != "" ||
		strings.TrimSpace(input.State) != "" ||
		strings.TrimSpace(input.Zip) != ""
}
