package domain

import (
	"fmt"
	"time"
)

// Verify decides the disposition of a certification lookup. It is a pure
// function of the record and the evaluation time: expiry is computed fresh
// on every call because records are not re-written when they lapse, so the
// stored status can be stale. The live date comparison always wins over
// the stored flag.
func Verify(cert *Certification, now time.Time) *VerificationResult {
	if cert == nil {
		return &VerificationResult{
			Success: false,
			Reason:  ReasonNotFound,
			Message: "Certification code not found. This product could not be verified.",
		}
	}

	if cert.Status == CertificationRevoked {
		details := cert.details()
		details.Status = string(CertificationRevoked)
		return &VerificationResult{
			Success: false,
			Reason:  ReasonRevoked,
			Message: "This certification has been revoked by the issuer.",
			Details: details,
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expired := cert.Status == CertificationExpired || cert.ExpiryDate.Before(today)
	if expired {
		details := cert.details()
		details.Status = string(CertificationExpired)
		return &VerificationResult{
			Success: false,
			Reason:  ReasonExpired,
			Message: fmt.Sprintf("This certification expired on %s.", cert.ExpiryDate.Format(DateLayout)),
			Details: details,
		}
	}

	return &VerificationResult{
		Success: true,
		Message: "Certification verified successfully. This product is authentic.",
		Details: cert.details(),
	}
}

func (c *Certification) details() *CertificationDetails {
	return &CertificationDetails{
		Code:         c.Code,
		IssueDate:    c.IssueDate.Format(DateLayout),
		ExpiryDate:   c.ExpiryDate.Format(DateLayout),
		Status:       string(c.Status),
		ProductName:  c.ProductName,
		BatchNumber:  c.BatchNumber,
		Manufacturer: c.Manufacturer,
	}
}
