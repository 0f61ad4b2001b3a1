package entity

import (
	"context"
	"time"
)

// Lead statuses as shown to operators.
const (
	StatusNew           = "New"
	StatusContacted     = "Contacted"
	StatusInterested    = "Interested"
	StatusNotInterested = "Not Interested"
	StatusDead          = "Dead"
)

const (
	LeadTypeSurplus       = "Surplus"
	LeadTypeFutureAuction = "Future Auction"
)

// Skip-trace progression on a lead. Empty means never traced.
const (
	SkipTraceNone      = ""
	SkipTraceCompleted = "completed"
)

// Lead is a tracked foreclosure/surplus-funds case record. Monetary fields
// are display-formatted strings ("$12,345"); County is encoded as
// "<StateCode>-<CountyName>"; Defendants and Plaintiffs are
// semicolon-delimited name lists.
type Lead struct {
	ID                   string     `json:"id"`
	CaseNumber           string     `json:"case_number"`
	County               string     `json:"county"`
	LeadType             string     `json:"lead_type"`
	AuctionDate          string     `json:"auction_date"`
	PropertyAddress      string     `json:"property_address"`
	PropertyCity         string     `json:"property_city"`
	PropertyZip          string     `json:"property_zip"`
	AssessedValue        string     `json:"assessed_value"`
	JudgmentAmount       string     `json:"judgment_amount"`
	SoldAmount           string     `json:"sold_amount"`
	Surplus              string     `json:"surplus"`
	Defendants           string     `json:"defendants"`
	Plaintiffs           string     `json:"plaintiffs"`
	ParcelID             string     `json:"parcel_id"`
	CaseURL              string     `json:"case_url"`
	ZillowURL            string     `json:"zillow_url"`
	PropertyAppraiserURL string     `json:"property_appraiser_url"`
	Status               string     `json:"status"`
	AssignedTo           string     `json:"assigned_to,omitempty"`
	PrimaryContactID     string     `json:"primary_contact_id,omitempty"`
	SkipTraceStatus      string     `json:"skip_trace_status,omitempty"`
	SkipTraceDate        *time.Time `json:"skip_trace_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	LastModified         time.Time  `json:"last_modified"`
}

// ValidStatus reports whether s is one of the operator-facing lead statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusInterested, StatusNotInterested, StatusDead:
		return true
	}
	return false
}

type LeadRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Upsert(ctx context.Context, lead *Lead) error
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateAssignee(ctx context.Context, id, operatorID string) error
	UpdateSkipTrace(ctx context.Context, id, status string, tracedAt time.Time, primaryContactID string) error
	Delete(ctx context.Context, id string) error
}
