package order

import "time"

// Canonical status vocabulary. Transitions only move forward; cancelled and
// completed are terminal.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var statusTransitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCompleted, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// Line items are denormalized at creation time so later product edits do not
// alter historical orders.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	NameEn    string  `json:"nameEn,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes,omitempty"`
}

type Order struct {
	ID                 string       `json:"id"`
	Items              []Item       `json:"items"`
	Customer           CustomerInfo `json:"customer"`
	DeliveryOptionName string       `json:"deliveryOptionName"`
	DeliveryZoneName   string       `json:"deliveryZoneName"`
	Subtotal           float64      `json:"subtotal"`
	DeliveryFee        float64      `json:"deliveryFee"`
	Total              float64      `json:"total"`
	Status             string       `json:"status"`
	CreatedAt          time.Time    `json:"createdAt"`
}
