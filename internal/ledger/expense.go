package ledger

import "time"

const (
	CategoryFood      = "Food"
	CategoryHotel     = "Hotel"
	CategoryTransport = "Transport"
)

// Expense is one persisted line item. Amount is in whole currency units.
type Expense struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Item is an expense as it appears inside a category group.
type Item struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// CategoryTotal groups the items of one category with their subtotal.
type CategoryTotal struct {
	Category string `json:"category"`
	Subtotal int64  `json:"subtotal"`
	Items    []Item `json:"items"`
}

// Summary is the grouped view of the ledger. Categories are in first-seen order.
// NoData is set only when there were no expenses at all.
type Summary struct {
	NoData     bool            `json:"no_data"`
	Total      int64           `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}
