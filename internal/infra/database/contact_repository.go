package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/reboundcg/lead-portal/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) CreateContact(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, lead_id, full_name, first_name, last_name,
			contact_type, age, relationship,
			current_address, current_city, current_state, current_zip,
			skip_traced, skip_trace_date, notes, data_source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	var tracedAt sql.NullTime
	if c.SkipTraceDate != nil {
		tracedAt = sql.NullTime{Time: *c.SkipTraceDate, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.LeadID, c.FullName, c.FirstName, c.LastName,
		c.ContactType, c.Age, c.Relationship,
		c.CurrentAddress, c.CurrentCity, c.CurrentState, c.CurrentZip,
		c.SkipTraced, tracedAt, c.Notes, c.DataSource, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) CreatePhones(ctx context.Context, phones []entity.PhoneNumber) error {
	query := `
		INSERT INTO phone_numbers (id, contact_id, phone_number, phone_type,
			is_primary, verified, disconnected, data_source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, p := range phones {
		_, err := r.DB.ExecContext(ctx, query,
			p.ID, p.ContactID, p.Number, p.PhoneType,
			p.IsPrimary, p.Verified, p.Disconnected, p.DataSource, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("create phone number: %w", err)
		}
	}
	return nil
}

func (r *ContactRepository) CreateEmails(ctx context.Context, emails []entity.Email) error {
	query := `
		INSERT INTO emails (id, contact_id, email_address, email_type,
			is_primary, verified, data_source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, e := range emails {
		_, err := r.DB.ExecContext(ctx, query,
			e.ID, e.ContactID, e.Address, e.EmailType,
			e.IsPrimary, e.Verified, e.DataSource, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("create email: %w", err)
		}
	}
	return nil
}

func (r *ContactRepository) CreateAddress(ctx context.Context, addr *entity.Address) error {
	query := `
		INSERT INTO addresses (id, contact_id, street_address, city, state, zip_code,
			address_type, is_current, data_source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		addr.ID, addr.ContactID, addr.StreetAddress, addr.City, addr.State, addr.ZipCode,
		addr.AddressType, addr.IsCurrent, addr.DataSource, addr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return nil
}

func (r *ContactRepository) CreateRelativeLink(ctx context.Context, link *entity.RelativeLink) error {
	query := `
		INSERT INTO relative_links (id, contact_id, relative_contact_id,
			relationship_type, data_source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		link.ID, link.ContactID, link.RelativeContactID,
		link.RelationshipType, link.DataSource, link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create relative link: %w", err)
	}
	return nil
}

// FindGraphByLeadID loads every contact of the lead together with phones,
// emails, addresses and outgoing relative edges. Traversal is id-based: the
// edge row points at the relative's contact id, and the relative is looked
// up among the lead's own contacts.
func (r *ContactRepository) FindGraphByLeadID(ctx context.Context, leadID string) ([]entity.ContactGraph, error) {
	contacts, err := r.findContacts(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, nil
	}

	phones, err := r.findPhones(ctx, leadID)
	if err != nil {
		return nil, err
	}
	emails, err := r.findEmails(ctx, leadID)
	if err != nil {
		return nil, err
	}
	addresses, err := r.findAddresses(ctx, leadID)
	if err != nil {
		return nil, err
	}
	links, err := r.findLinks(ctx, leadID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Contact, len(contacts))
	for i := range contacts {
		byID[contacts[i].ID] = &contacts[i]
	}

	graphs := make([]entity.ContactGraph, 0, len(contacts))
	for _, c := range contacts {
		graph := entity.ContactGraph{Contact: c}
		graph.Phones = phones[c.ID]
		graph.Emails = emails[c.ID]
		graph.Addresses = addresses[c.ID]
		for _, link := range links[c.ID] {
			graph.Relatives = append(graph.Relatives, entity.RelativeEdge{
				Link:     link,
				Relative: byID[link.RelativeContactID],
			})
		}
		graphs = append(graphs, graph)
	}
	return graphs, nil
}

func (r *ContactRepository) findContacts(ctx context.Context, leadID string) ([]entity.Contact, error) {
	query := `
		SELECT id, lead_id, full_name, first_name, last_name,
			contact_type, age, relationship,
			current_address, current_city, current_state, current_zip,
			skip_traced, skip_trace_date, notes, data_source, created_at
		FROM contacts WHERE lead_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []entity.Contact
	for rows.Next() {
		var c entity.Contact
		var tracedAt sql.NullTime
		err := rows.Scan(
			&c.ID, &c.LeadID, &c.FullName, &c.FirstName, &c.LastName,
			&c.ContactType, &c.Age, &c.Relationship,
			&c.CurrentAddress, &c.CurrentCity, &c.CurrentState, &c.CurrentZip,
			&c.SkipTraced, &tracedAt, &c.Notes, &c.DataSource, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		if tracedAt.Valid {
			c.SkipTraceDate = &tracedAt.Time
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

const byLeadContacts = `contact_id IN (SELECT id FROM contacts WHERE lead_id = $1)`

func (r *ContactRepository) findPhones(ctx context.Context, leadID string) (map[string][]entity.PhoneNumber, error) {
	query := `
		SELECT id, contact_id, phone_number, phone_type,
			is_primary, verified, disconnected, data_source, created_at
		FROM phone_numbers WHERE ` + byLeadContacts + ` ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("list phone numbers: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.PhoneNumber)
	for rows.Next() {
		var p entity.PhoneNumber
		err := rows.Scan(&p.ID, &p.ContactID, &p.Number, &p.PhoneType,
			&p.IsPrimary, &p.Verified, &p.Disconnected, &p.DataSource, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan phone number: %w", err)
		}
		out[p.ContactID] = append(out[p.ContactID], p)
	}
	return out, rows.Err()
}

func (r *ContactRepository) findEmails(ctx context.Context, leadID string) (map[string][]entity.Email, error) {
	query := `
		SELECT id, contact_id, email_address, email_type,
			is_primary, verified, data_source, created_at
		FROM emails WHERE ` + byLeadContacts + ` ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.Email)
	for rows.Next() {
		var e entity.Email
		err := rows.Scan(&e.ID, &e.ContactID, &e.Address, &e.EmailType,
			&e.IsPrimary, &e.Verified, &e.DataSource, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		out[e.ContactID] = append(out[e.ContactID], e)
	}
	return out, rows.Err()
}

func (r *ContactRepository) findAddresses(ctx context.Context, leadID string) (map[string][]entity.Address, error) {
	query := `
		SELECT id, contact_id, street_address, city, state, zip_code,
			address_type, is_current, data_source, created_at
		FROM addresses WHERE ` + byLeadContacts + ` ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.Address)
	for rows.Next() {
		var a entity.Address
		err := rows.Scan(&a.ID, &a.ContactID, &a.StreetAddress, &a.City, &a.State, &a.ZipCode,
			&a.AddressType, &a.IsCurrent, &a.DataSource, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out[a.ContactID] = append(out[a.ContactID], a)
	}
	return out, rows.Err()
}

func (r *ContactRepository) findLinks(ctx context.Context, leadID string) (map[string][]entity.RelativeLink, error) {
	query := `
		SELECT id, contact_id, relative_contact_id, relationship_type, data_source, created_at
		FROM relative_links WHERE ` + byLeadContacts + ` ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("list relative links: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.RelativeLink)
	for rows.Next() {
		var l entity.RelativeLink
		err := rows.Scan(&l.ID, &l.ContactID, &l.RelativeContactID,
			&l.RelationshipType, &l.DataSource, &l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan relative link: %w", err)
		}
		out[l.ContactID] = append(out[l.ContactID], l)
	}
	return out, rows.Err()
}
