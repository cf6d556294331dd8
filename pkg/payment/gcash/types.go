package gcash

// Reference prefixes
const (
	PrefixOrder    = "WINE"
	PrefixDonation = "DONATION"
)

// Instructions is the manual send-money walkthrough shown after an order
// is confirmed. No money moves through this service.
type Instructions struct {
	Method        string   `json:"method"`
	AccountName   string   `json:"account_name"`
	AccountNumber string   `json:"account_number"`
	Amount        int      `json:"amount"`
	Reference     string   `json:"reference"`
	Steps         []string `json:"steps"`
}
