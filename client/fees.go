package client

import (
	"context"

	"github.com/volatiletech/null/v8"
)

// FeeInvoice is one fee row on the payments screen.
type FeeInvoice struct {
	ID         int         `json:"id"`
	Title      string      `json:"title"`
	Amount     float64     `json:"amount"`
	DueDate    string      `json:"due_date"` // YYYY-MM-DD
	Paid       bool        `json:"paid"`
	PaidAt     null.String `json:"paid_at,omitempty"`
	ReceiptURL null.String `json:"receipt_url,omitempty"`
}

func (c *Client) Fees(ctx context.Context) ([]FeeInvoice, error) {
	var fees []FeeInvoice
	if err := c.get(ctx, "/fees", &fees); err != nil {
		return nil, err
	}
	return fees, nil
}
