package domain

import "time"

// ContactMessage is a free-form message addressed to staff.
// UserID is empty when the sender was not authenticated.
type ContactMessage struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Staff     string    `json:"staff"`
	UserID    string    `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
