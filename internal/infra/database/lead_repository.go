package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/reboundcg/lead-portal/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, case_number, county, lead_type, auction_date,
	property_address, property_city, property_zip,
	assessed_value, judgment_amount, sold_amount, surplus,
	defendants, plaintiffs, parcel_id,
	case_url, zillow_url, property_appraiser_url,
	status, assigned_to, primary_contact_id,
	skip_trace_status, skip_trace_date, created_at, last_modified`

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lead %s not found", id)
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return lead, nil
}

// Upsert inserts or refreshes the imported fields keyed by the externally
// assigned id. Assignment and skip-trace columns are never touched here, so
// re-importing a portfolio does not undo triage work.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, case_number, county, lead_type, auction_date,
			property_address, property_city, property_zip,
			assessed_value, judgment_amount, sold_amount, surplus,
			defendants, plaintiffs, parcel_id,
			case_url, zillow_url, property_appraiser_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id)
		DO UPDATE SET
			case_number = EXCLUDED.case_number,
			county = EXCLUDED.county,
			lead_type = EXCLUDED.lead_type,
			auction_date = EXCLUDED.auction_date,
			property_address = EXCLUDED.property_address,
			property_city = EXCLUDED.property_city,
			property_zip = EXCLUDED.property_zip,
			assessed_value = EXCLUDED.assessed_value,
			judgment_amount = EXCLUDED.judgment_amount,
			sold_amount = EXCLUDED.sold_amount,
			surplus = EXCLUDED.surplus,
			defendants = EXCLUDED.defendants,
			plaintiffs = EXCLUDED.plaintiffs,
			parcel_id = EXCLUDED.parcel_id,
			case_url = EXCLUDED.case_url,
			zillow_url = EXCLUDED.zillow_url,
			property_appraiser_url = EXCLUDED.property_appraiser_url,
			status = EXCLUDED.status,
			last_modified = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID, lead.CaseNumber, lead.County, lead.LeadType, lead.AuctionDate,
		lead.PropertyAddress, lead.PropertyCity, lead.PropertyZip,
		lead.AssessedValue, lead.JudgmentAmount, lead.SoldAmount, lead.Surplus,
		lead.Defendants, lead.Plaintiffs, lead.ParcelID,
		lead.CaseURL, lead.ZillowURL, lead.PropertyAppraiserURL, lead.Status,
	)
	if err != nil {
		return fmt.Errorf("upsert lead %s: %w", lead.ID, err)
	}
	return nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE leads SET status = $2, last_modified = NOW() WHERE id = $1`
	if _, err := r.DB.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	return nil
}

func (r *LeadRepository) UpdateAssignee(ctx context.Context, id, operatorID string) error {
	query := `UPDATE leads SET assigned_to = $2, last_modified = NOW() WHERE id = $1`
	if _, err := r.DB.ExecContext(ctx, query, id, operatorID); err != nil {
		return fmt.Errorf("update lead assignee: %w", err)
	}
	return nil
}

func (r *LeadRepository) UpdateSkipTrace(ctx context.Context, id, status string, tracedAt time.Time, primaryContactID string) error {
	query := `
		UPDATE leads
		SET skip_trace_status = $2, skip_trace_date = $3,
			primary_contact_id = $4, last_modified = NOW()
		WHERE id = $1
	`
	if _, err := r.DB.ExecContext(ctx, query, id, status, tracedAt, primaryContactID); err != nil {
		return fmt.Errorf("update lead skip trace: %w", err)
	}
	return nil
}

// Delete removes the lead and everything it owns: notes, the contact rows,
// and the contacts' phones, emails, addresses and relative links. One local
// transaction so a lead never leaves orphans behind.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin lead delete: %w", err)
	}
	defer tx.Rollback()

	dependents := []string{
		`DELETE FROM relative_links WHERE contact_id IN (SELECT id FROM contacts WHERE lead_id = $1)`,
		`DELETE FROM phone_numbers WHERE contact_id IN (SELECT id FROM contacts WHERE lead_id = $1)`,
		`DELETE FROM emails WHERE contact_id IN (SELECT id FROM contacts WHERE lead_id = $1)`,
		`DELETE FROM addresses WHERE contact_id IN (SELECT id FROM contacts WHERE lead_id = $1)`,
		`DELETE FROM notes WHERE lead_id = $1`,
		`DELETE FROM contacts WHERE lead_id = $1`,
		`DELETE FROM leads WHERE id = $1`,
	}
	for _, query := range dependents {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("delete lead %s: %w", id, err)
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	lead := &entity.Lead{}
	var skipTraceDate sql.NullTime

	err := row.Scan(
		&lead.ID, &lead.CaseNumber, &lead.County, &lead.LeadType, &lead.AuctionDate,
		&lead.PropertyAddress, &lead.PropertyCity, &lead.PropertyZip,
		&lead.AssessedValue, &lead.JudgmentAmount, &lead.SoldAmount, &lead.Surplus,
		&lead.Defendants, &lead.Plaintiffs, &lead.ParcelID,
		&lead.CaseURL, &lead.ZillowURL, &lead.PropertyAppraiserURL,
		&lead.Status, &lead.AssignedTo, &lead.PrimaryContactID,
		&lead.SkipTraceStatus, &skipTraceDate, &lead.CreatedAt, &lead.LastModified,
	)
	if err != nil {
		return nil, err
	}

	if skipTraceDate.Valid {
		lead.SkipTraceDate = &skipTraceDate.Time
	}
	return lead, nil
}
