package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kinds of messages published to the notification queue.
const (
	KindExpenseCreated = "expense.created"
	KindIncomeUpdated  = "income.updated"
)

// Message notifies downstream consumers about a balance-changing event.
// It carries only the user and the amount, consumers fetch anything else
// through the API.
type Message struct {
	Kind      string          `json:"kind"`
	UserID    uuid.UUID       `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MessageFromJSON creates a message from JSON bytes
func MessageFromJSON(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
