package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reboundcg/lead-portal/internal/parse"
)

const (
	ContactTypeDefendant = "defendant"
	ContactTypeRelative  = "relative"
	ContactTypeAssociate = "associate"
)

// Where a record came from: operator-entered or provider-supplied.
const (
	DataSourceManual   = "manual"
	DataSourceProvider = "provider"
)

var ErrNameRequired = errors.New("full name is required")

// Contact is a located person attached to a lead: the defendant themselves,
// or a relative/associate discovered while tracing them. The current-address
// fields are a denormalized snapshot kept on the contact for quick display;
// a normalized Address row may exist alongside them.
type Contact struct {
	ID             string     `json:"id"`
	LeadID         string     `json:"lead_id"`
	FullName       string     `json:"full_name"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	ContactType    string     `json:"contact_type"`
	Age            string     `json:"age,omitempty"`
	Relationship   string     `json:"relationship,omitempty"`
	CurrentAddress string     `json:"current_address,omitempty"`
	CurrentCity    string     `json:"current_city,omitempty"`
	CurrentState   string     `json:"current_state,omitempty"`
	CurrentZip     string     `json:"current_zip,omitempty"`
	SkipTraced     bool       `json:"skip_traced"`
	SkipTraceDate  *time.Time `json:"skip_trace_date,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	DataSource     string     `json:"data_source"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewContact builds a contact with the name decomposed into first/last.
func NewContact(leadID, fullName, contactType string) (*Contact, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, ErrNameRequired
	}

	first, last := parse.FirstLast(fullName)
	return &Contact{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		FullName:    fullName,
		FirstName:   first,
		LastName:    last,
		ContactType: contactType,
		DataSource:  DataSourceManual,
		CreatedAt:   time.Now(),
	}, nil
}

type PhoneNumber struct {
	ID           string    `json:"id"`
	ContactID    string    `json:"contact_id"`
	Number       string    `json:"phone_number"`
	PhoneType    string    `json:"phone_type"`
	IsPrimary    bool      `json:"is_primary"`
	Verified     bool      `json:"verified"`
	Disconnected bool      `json:"disconnected"`
	DataSource   string    `json:"data_source"`
	CreatedAt    time.Time `json:"created_at"`
}

type Email struct {
	ID         string    `json:"id"`
	ContactID  string    `json:"contact_id"`
	Address    string    `json:"email_address"`
	EmailType  string    `json:"email_type"`
	IsPrimary  bool      `json:"is_primary"`
	Verified   bool      `json:"verified"`
	DataSource string    `json:"data_source"`
	CreatedAt  time.Time `json:"created_at"`
}

const AddressTypeCurrent = "current"

type Address struct {
	ID            string    `json:"id"`
	ContactID     string    `json:"contact_id"`
	StreetAddress string    `json:"street_address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	AddressType   string    `json:"address_type"`
	IsCurrent     bool      `json:"is_current"`
	DataSource    string    `json:"data_source"`
	CreatedAt     time.Time `json:"created_at"`
}

// RelativeLink is a directed, labeled edge from a source contact to a
// relative contact. The edge is its own row rather than a property of either
// endpoint, so the same relative can be linked from several contacts and
// survives independently of any one edge.
type RelativeLink struct {
	ID                string    `json:"id"`
	ContactID         string    `json:"contact_id"`
	RelativeContactID string    `json:"relative_contact_id"`
	RelationshipType  string    `json:"relationship_type"`
	DataSource        string    `json:"data_source"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewPhoneNumber drops nothing: blank-number filtering happens at the
// aggregate boundary, where a blank repeated field is silently skipped.
func NewPhoneNumber(contactID, number, phoneType string, primary bool) PhoneNumber {
	return PhoneNumber{
		ID:         uuid.New().String(),
		ContactID:  contactID,
		Number:     number,
		PhoneType:  phoneType,
		IsPrimary:  primary,
		DataSource: DataSourceManual,
		CreatedAt:  time.Now(),
	}
}

func NewEmail(contactID, address, emailType string, primary bool) Email {
	return Email{
		ID:         uuid.New().String(),
		ContactID:  contactID,
		Address:    address,
		EmailType:  emailType,
		IsPrimary:  primary,
		DataSource: DataSourceManual,
		CreatedAt:  time.Now(),
	}
}

func NewCurrentAddress(contactID, street, city, state, zip string) Address {
	return Address{
		ID:            uuid.New().String(),
		ContactID:     contactID,
		StreetAddress: street,
		City:          city,
		State:         state,
		ZipCode:       zip,
		AddressType:   AddressTypeCurrent,
		IsCurrent:     true,
		DataSource:    DataSourceManual,
		CreatedAt:     time.Now(),
	}
}

func NewRelativeLink(contactID, relativeContactID, relationshipType string) RelativeLink {
	if strings.TrimSpace(relationshipType) == "" {
		relationshipType = "relative"
	}
	return RelativeLink{
		ID:                uuid.New().String(),
		ContactID:         contactID,
		RelativeContactID: relativeContactID,
		RelationshipType:  relationshipType,
		DataSource:        DataSourceManual,
		CreatedAt:         time.Now(),
	}
}

// RelativeEdge pairs a link with its target contact for display.
type RelativeEdge struct {
	Link     RelativeLink `json:"link"`
	Relative *Contact     `json:"relative,omitempty"`
}

// ContactGraph is the full aggregate for one contact: the contact row plus
// its phones, emails, addresses and outgoing relative edges.
type ContactGraph struct {
	Contact   Contact        `json:"contact"`
	Phones    []PhoneNumber  `json:"phones"`
	Emails    []Email        `json:"emails"`
	Addresses []Address      `json:"addresses"`
	Relatives []RelativeEdge `json:"relatives"`
}
