package domain

import "time"

// AlertType classifies a user alert.
type AlertType string

const (
	AlertPrice   AlertType = "price"
	AlertVisit   AlertType = "visit"
	AlertListing AlertType = "listing"
)

// Alert is a per-user notification record.
type Alert struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      AlertType `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// OwnerID satisfies policy.Owned.
func (a *Alert) OwnerID() string { return a.UserID }
