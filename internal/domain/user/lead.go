// Package user defines the lead entity captured from the contact form and
// the estimator, with its repository contract.
package user

import "time"

// LeadKind distinguishes where a lead came from
type LeadKind string

const (
	LeadContact  LeadKind = "contact"
	LeadEstimate LeadKind = "estimate"
)

// Lead is one captured enquiry
type Lead struct {
	ID        string         `json:"id"`
	Kind      LeadKind       `json:"kind"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Payload   map[string]any `json:"payload"`
	Delivered bool           `json:"delivered"`
	CreatedAt time.Time      `json:"createdAt"`
}

// LeadRepository persists and lists captured leads
type LeadRepository interface {
	Store(lead *Lead) error
	MarkDelivered(id string) error
	FindAll(limit int) ([]*Lead, error)
}
