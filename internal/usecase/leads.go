package usecase

import (
	"context"
	"log/slog"

	"github.com/reboundcg/lead-portal/internal/entity"
)

// LeadOpsUseCase covers the single-lead mutations and their bulk variants.
type LeadOpsUseCase struct {
	Leads entity.LeadRepositoryInterface
	Log   *slog.Logger
}

func NewLeadOpsUseCase(leads entity.LeadRepositoryInterface, log *slog.Logger) *LeadOpsUseCase {
	return &LeadOpsUseCase{Leads: leads, Log: log}
}

func (uc *LeadOpsUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidStatus(status) {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "unknown status: " + status}
	}

	if err := uc.Leads.UpdateStatus(ctx, id, status); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update status", Cause: err}
	}
	return nil
}

// Assign sets or clears the lead's assignee. An empty operator id means
// unassigned.
func (uc *LeadOpsUseCase) Assign(ctx context.Context, id, operatorID string) error {
	if err := uc.Leads.UpdateAssignee(ctx, id, operatorID); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to assign lead", Cause: err}
	}
	return nil
}

func (uc *LeadOpsUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.Leads.Delete(ctx, id); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to delete lead", Cause: err}
	}
	return nil
}

// BulkResult reports aggregate rather than per-item success.
type BulkResult struct {
	Requested int `json:"requested"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// BulkAssign runs an ordered loop of independent single-lead assignments.
// One lead's failure does not block attempting the rest.
func (uc *LeadOpsUseCase) BulkAssign(ctx context.Context, ids []string, operatorID string) BulkResult {
	return uc.bulk(ctx, ids, "assign", func(ctx context.Context, id string) error {
		return uc.Leads.UpdateAssignee(ctx, id, operatorID)
	})
}

func (uc *LeadOpsUseCase) BulkDelete(ctx context.Context, ids []string) BulkResult {
	return uc.bulk(ctx, ids, "delete", func(ctx context.Context, id string) error {
		return uc.Leads.Delete(ctx, id)
	})
}

func (uc *LeadOpsUseCase) bulk(ctx context.Context, ids []string, op string, fn func(context.Context, string) error) BulkResult {
	result := BulkResult{Requested: len(ids)}
	for _, id := range ids {
		if err := fn(ctx, id); err != nil {
			uc.Log.Error("bulk "+op+" failed for lead", "lead_id", id, "err", err)
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result
}
