package gcash

import (
	"fmt"
	"time"
)

// Client builds GCash manual-payment instructions for one receiving wallet.
type Client struct {
	config Config
}

// NewClient creates a new GCash instruction builder with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Client{config: config}, nil
}

// Instructions returns the step-by-step send-money guide for amount pesos
// tagged with reference.
func (c *Client) Instructions(reference string, amount int) (*Instructions, error) {
	if reference == "" {
		return nil, ErrInvalidReference
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Instructions{
		Method:        "gcash",
		AccountName:   c.config.AccountName,
		AccountNumber: c.config.AccountNumber,
		Amount:        amount,
		Reference:     reference,
		Steps: []string{
			"Open your GCash app",
			`Select "Send Money"`,
			"Enter the number above",
			fmt.Sprintf("Enter the exact amount: ₱%d", amount),
			fmt.Sprintf("Add reference: %q", reference),
			"Complete the transaction",
		},
	}, nil
}

// NewReference formats a payment reference from the last six digits of the
// millisecond timestamp, e.g. WINE-482913.
func NewReference(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%06d", prefix, at.UnixMilli()%1000000)
}
