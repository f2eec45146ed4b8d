package domain

import "time"

// VisitStatus is the lifecycle state of a visit request.
type VisitStatus string

const (
	VisitPending  VisitStatus = "pending"
	VisitApproved VisitStatus = "approved"
	VisitRejected VisitStatus = "rejected"
)

// Once a request leaves pending it is terminal.
var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitPending: {VisitApproved, VisitRejected},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	for _, allowed := range visitTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsDecision reports whether s is a status an admin may set.
func (s VisitStatus) IsDecision() bool {
	return s == VisitApproved || s == VisitRejected
}

// VisitRequest is a buyer's request to see a listing in person.
type VisitRequest struct {
	ID        string      `json:"_id"`
	UserID    string      `json:"userId"`
	ListingID string      `json:"listingId"`
	VisitDate string      `json:"visitDate"`
	VisitTime string      `json:"visitTime"`
	Message   string      `json:"message,omitempty"`
	Status    VisitStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ListingSummary is the listing projection shown next to a visit request.
type ListingSummary struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	UserRef      string  `json:"userRef"`
	Address      string  `json:"address"`
	RegularPrice float64 `json:"regularPrice"`
}

// VisitRequestView is a visit request with requester and listing expanded.
type VisitRequestView struct {
	ID        string          `json:"_id"`
	User      *UserSummary    `json:"userId"`
	Listing   *ListingSummary `json:"listingId"`
	VisitDate string          `json:"visitDate"`
	VisitTime string          `json:"visitTime"`
	Message   string          `json:"message,omitempty"`
	Status    VisitStatus     `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
