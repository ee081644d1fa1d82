package models

import "time"

// Order statuses.
const (
	OrderStatusProcessing = "processing"
	OrderStatusReady      = "ready"
)

// Order is a row in the orders collection of the record store. TaskID is the
// conversion provider's job handle and is opaque to everything else.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	URL       string    `json:"url"`
	Source    string    `json:"source"`
	TaskID    string    `json:"task_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderUpdate is the partial-update payload used to finalize an order.
type OrderUpdate struct {
	Status      string    `json:"status"`
	Filename    string    `json:"filename"`
	DropboxLink string    `json:"dropbox_link"`
	UpdatedAt   time.Time `json:"updated_at"`
}
