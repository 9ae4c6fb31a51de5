package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnerStatus enum constants. Any status is reachable from any other;
// there is no transition guard beyond the role check on the endpoint.
const (
	PartnerStatusActive      = "Active"
	PartnerStatusInactive    = "Inactive"
	PartnerStatusBlacklisted = "Blacklisted"
)

// OrderRef is a compact order-history entry kept on the partner record
type OrderRef struct {
	Number string          `json:"number"` // PO or SO number
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

// PartnerDocument references an uploaded compliance document
type PartnerDocument struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadDate time.Time `json:"upload_date"`
}

// Vendor represents a supplier record
type Vendor struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	ContactPerson string            `json:"contact_person"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	GSTIN         string            `json:"gstin,omitempty"`
	VATNumber     string            `json:"vat_number,omitempty"`
	PaymentTerms  string            `json:"payment_terms"`
	Status        string            `json:"status"`
	OrderHistory  []OrderRef        `json:"order_history"`
	Documents     []PartnerDocument `json:"documents"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Customer represents a buyer record; unlike vendors it carries a credit limit
type Customer struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	GSTIN         string          `json:"gstin,omitempty"`
	VATNumber     string          `json:"vat_number,omitempty"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	PaymentTerms  string          `json:"payment_terms"`
	Status        string          `json:"status"`
	OrderHistory  []OrderRef      `json:"order_history"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ValidPartnerStatus reports whether s is one of the three partner states
func ValidPartnerStatus(s string) bool {
	return s == PartnerStatusActive || s == PartnerStatusInactive || s == PartnerStatusBlacklisted
}
