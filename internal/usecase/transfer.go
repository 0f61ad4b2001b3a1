package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/reboundcg/lead-portal/internal/entity"
)

// LeadTransfer is the external exchange schema for leads: the camelCase
// field names the scraping pipeline produces. Export emits the same schema
// import consumes, so a round trip is an identity upsert.
type LeadTransfer struct {
	ID                   string `json:"id"`
	CaseNumber           string `json:"caseNumber"`
	County               string `json:"county"`
	LeadType             string `json:"leadType"`
	AuctionDate          string `json:"auctionDate"`
	PropertyAddress      string `json:"propertyAddress"`
	PropertyCity         string `json:"propertyCity"`
	PropertyZip          string `json:"propertyZip"`
	AssessedValue        string `json:"assessedValue"`
	JudgmentAmount       string `json:"judgmentAmount"`
	SoldAmount           string `json:"soldAmount"`
	Surplus              string `json:"surplus"`
	Defendants           string `json:"defendants"`
	Plaintiffs           string `json:"plaintiffs"`
	ParcelID             string `json:"parcelId"`
	CaseURL              string `json:"caseUrl"`
	ZillowURL            string `json:"zillowUrl"`
	PropertyAppraiserURL string `json:"propertyAppraiserUrl"`
	Status               string `json:"status,omitempty"`
}

// TransferUseCase moves lead sets across the service boundary as JSON.
type TransferUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewTransferUseCase(leads entity.LeadRepositoryInterface) *TransferUseCase {
	return &TransferUseCase{Leads: leads}
}

// Export serializes the given (already filtered) lead set in the external
// schema.
func (uc *TransferUseCase) Export(leads []entity.Lead) ([]byte, error) {
	rows := make([]LeadTransfer, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, toTransfer(l))
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, &TechnicalError{Code: "EXPORT_ERROR", Message: "failed to serialize leads", Cause: err}
	}
	return data, nil
}

// Import upserts leads keyed by id after translating the external schema.
// A malformed payload is a single invalid-input failure with no partial-row
// detail.
func (uc *TransferUseCase) Import(ctx context.Context, payload []byte) (int, error) {
	var rows []LeadTransfer
	if err := json.Unmarshal(payload, &rows); err != nil {
		return 0, &DomainError{Code: "INVALID_INPUT", Message: "invalid lead payload"}
	}

	for _, row := range rows {
		if strings.TrimSpace(row.ID) == "" {
			return 0, &DomainError{Code: "INVALID_INPUT", Message: "lead row missing id"}
		}
	}

	count := 0
	for _, row := range rows {
		lead := fromTransfer(row)
		if err := uc.Leads.Upsert(ctx, &lead); err != nil {
			return count, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to import lead " + lead.ID,
				Cause:   err,
			}
		}
		count++
	}
	return count, nil
}

func toTransfer(l entity.Lead) LeadTransfer {
	return LeadTransfer{
		ID:                   l.ID,
		CaseNumber:           l.CaseNumber,
		County:               l.County,
		LeadType:             l.LeadType,
		AuctionDate:          l.AuctionDate,
		PropertyAddress:      l.PropertyAddress,
		PropertyCity:         l.PropertyCity,
		PropertyZip:          l.PropertyZip,
		AssessedValue:        l.AssessedValue,
		JudgmentAmount:       l.JudgmentAmount,
		SoldAmount:           l.SoldAmount,
		Surplus:              l.Surplus,
		Defendants:           l.Defendants,
		Plaintiffs:           l.Plaintiffs,
		ParcelID:             l.ParcelID,
		CaseURL:              l.CaseURL,
		ZillowURL:            l.ZillowURL,
		PropertyAppraiserURL: l.PropertyAppraiserURL,
		Status:               l.Status,
	}
}

func fromTransfer(row LeadTransfer) entity.Lead {
	status := row.Status
	if status == "" {
		status = entity.StatusNew
	}

	return entity.Lead{
		ID:                   row.ID,
		CaseNumber:           row.CaseNumber,
		County:               row.County,
		LeadType:             row.LeadType,
		AuctionDate:          row.AuctionDate,
		PropertyAddress:      row.PropertyAddress,
		PropertyCity:         row.PropertyCity,
		PropertyZip:          row.PropertyZip,
		AssessedValue:        row.AssessedValue,
		JudgmentAmount:       row.JudgmentAmount,
		SoldAmount:           row.SoldAmount,
		Surplus:              row.Surplus,
		Defendants:           row.Defendants,
		Plaintiffs:           row.Plaintiffs,
		ParcelID:             row.ParcelID,
		CaseURL:              row.CaseURL,
		ZillowURL:            row.ZillowURL,
		PropertyAppraiserURL: row.PropertyAppraiserURL,
		Status:               status,
	}
}
