package domain

import (
	"errors"
	"time"
)

// ErrInvalidArgument is returned when required input is empty or malformed.
var ErrInvalidArgument = errors.New("invalid argument")

// CertificationStatus is the stored disposition of a certification record.
// It is a hint, not the sole source of truth: expiry is always re-checked
// against the evaluation time.
type CertificationStatus string

const (
	// CertificationValid marks a record believed usable when last written.
	CertificationValid CertificationStatus = "Valid"
	// CertificationExpired marks a record past its validity window.
	CertificationExpired CertificationStatus = "Expired"
	// CertificationRevoked marks a record administratively withdrawn.
	CertificationRevoked CertificationStatus = "Revoked"
)

// Certification asserts a product batch's authenticity within a bounded
// validity window. All fields are immutable after creation.
type Certification struct {
	// Code is the unique barcode/QR payload identifying the record.
	Code string
	// IssueDate is when the certification was granted.
	IssueDate time.Time
	// ExpiryDate is when the certification stops being usable. Always after IssueDate.
	ExpiryDate time.Time
	// Status is the stored disposition hint.
	Status CertificationStatus
	// ProductName is the certified product.
	ProductName string
	// BatchNumber identifies the certified batch.
	BatchNumber string
	// Manufacturer is the producing company.
	Manufacturer string
}

// VerificationReason classifies why a verification did not succeed.
type VerificationReason string

const (
	// ReasonNotFound means no certification exists for the code.
	ReasonNotFound VerificationReason = "not_found"
	// ReasonExpired means the certification is past its validity window.
	ReasonExpired VerificationReason = "expired"
	// ReasonRevoked means the certification was administratively withdrawn.
	ReasonRevoked VerificationReason = "revoked"
)

// CertificationDetails is the record as rendered to clients.
type CertificationDetails struct {
	Code         string `json:"code"`
	IssueDate    string `json:"issueDate"`
	ExpiryDate   string `json:"expiryDate"`
	Status       string `json:"status"`
	ProductName  string `json:"productName"`
	BatchNumber  string `json:"batchNumber"`
	Manufacturer string `json:"manufacturer"`
}

// VerificationResult is the disposition of a certification lookup.
type VerificationResult struct {
	// Success is true only when the certification is usable right now.
	Success bool `json:"success"`
	// Message is the human-readable disposition.
	Message string `json:"message"`
	// Details carries the record fields when one was found.
	Details *CertificationDetails `json:"details,omitempty"`

	// Reason classifies failures for callers; it is not serialized.
	Reason VerificationReason `json:"-"`
}

// DateLayout is the wire format for certification dates.
const DateLayout = "2006-01-02"
