package domain

import "github.com/shopspring/decimal"

// Buyer holds the contact fields collected at checkout. The composer assumes
// these were already validated by the caller.
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Order is the ephemeral composer output. It is never stored; the deep link
// is the only thing that leaves the process.
type Order struct {
	ID      string          `json:"order_id"`
	Buyer   Buyer           `json:"buyer"`
	Items   []LineItem      `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Message string          `json:"message"`
	URL     string          `json:"whatsapp_url"`
}
