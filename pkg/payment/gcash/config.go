package gcash

// Config describes the receiving GCash wallet shown to shoppers.
type Config struct {
	// AccountName is the registered name of the receiving wallet
	AccountName string

	// AccountNumber is the mobile number shoppers send money to
	AccountNumber string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.AccountName == "" {
		return ErrInvalidConfig
	}
	if c.AccountNumber == "" {
		return ErrInvalidConfig
	}
	return nil
}
