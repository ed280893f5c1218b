// Package owner provides the owner domain model and identity resolution.
//
// An owner's identity is its normalized (full name, mailing address) pair —
// the pair IS the identity, not a surrogate lookup key. Two records naming
// "John Smith " and "JOHN SMITH" at the same address resolve to one owner.
package owner

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TypeIndividual is the default owner-type classification.
const TypeIndividual = "individual"

// ErrMissingIdentity indicates a name or address that normalizes to empty.
var ErrMissingIdentity = errors.New("owner requires a non-empty name and mailing address")

// ConfidenceTier is a coarse categorical rating of how reliable an owner's
// wealth estimate is, derived from how many scoring rules triggered.
type ConfidenceTier string

// ConfidenceTier values. The zero value means no estimate has been computed.
const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

// Owner represents a property owner identified by its normalized
// (full name, mailing address) pair.
type Owner struct {
	id                string
	fullName          string
	mailingAddress    string
	ownerType         string
	estimatedNetWorth *float64
	confidence        ConfidenceTier
	createdAt         time.Time
	lastUpdated       time.Time
}

// NewOwner creates a new Owner with a freshly generated id. The name and
// address are normalized; both must be non-empty after normalization.
func NewOwner(fullName, mailingAddress string) (Owner, error) {
	name := NormalizeName(fullName)
	addr := NormalizeAddress(mailingAddress)
	if name == "" || addr == "" {
		return Owner{}, ErrMissingIdentity
	}
	return Owner{
		id:             uuid.NewString(),
		fullName:       name,
		mailingAddress: addr,
		ownerType:      TypeIndividual,
	}, nil
}

// ReconstructOwner creates an Owner from persisted state (used by stores).
func ReconstructOwner(
	id, fullName, mailingAddress, ownerType string,
	estimatedNetWorth *float64,
	confidence ConfidenceTier,
	createdAt, lastUpdated time.Time,
) Owner {
	return Owner{
		id:                id,
		fullName:          fullName,
		mailingAddress:    mailingAddress,
		ownerType:         ownerType,
		estimatedNetWorth: estimatedNetWorth,
		confidence:        confidence,
		createdAt:         createdAt,
		lastUpdated:       lastUpdated,
	}
}

// ID returns the owner id.
func (o Owner) ID() string { return o.id }

// FullName returns the normalized full name.
func (o Owner) FullName() string { return o.fullName }

// MailingAddress returns the normalized mailing address.
func (o Owner) MailingAddress() string { return o.mailingAddress }

// Type returns the owner-type classification.
func (o Owner) Type() string { return o.ownerType }

// EstimatedNetWorth returns the estimated net worth, or nil before the first
// wealth recomputation.
func (o Owner) EstimatedNetWorth() *float64 { return o.estimatedNetWorth }

// Confidence returns the confidence tier of the current estimate, or the
// empty string before the first wealth recomputation.
func (o Owner) Confidence() ConfidenceTier { return o.confidence }

// CreatedAt returns when the owner row was created.
func (o Owner) CreatedAt() time.Time { return o.createdAt }

// LastUpdated returns when the wealth estimate was last recomputed. Zero
// before the first recomputation.
func (o Owner) LastUpdated() time.Time { return o.lastUpdated }

// WithEstimate returns a copy of the owner carrying a freshly computed
// wealth estimate.
func (o Owner) WithEstimate(netWorth float64, confidence ConfidenceTier, at time.Time) Owner {
	o.estimatedNetWorth = &netWorth
	o.confidence = confidence
	o.lastUpdated = at
	return o
}
