package messages

import "time"

const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
	Starred   bool      `json:"starred"`
	Reply     string    `json:"reply,omitempty"`
}
