package entity

// MailerConfig is the sender and recipient configuration captured once at startup.
type MailerConfig struct {
	// From is the verified sender address (SES_FROM_EMAIL).
	From string
	// DefaultRecipient receives contact submissions that name no recipient (SES_TO_EMAIL).
	DefaultRecipient string
}

// GetDefaultRecipient returns the configured default recipient, or "" when unset.
func (c MailerConfig) GetDefaultRecipient() string {
	return c.DefaultRecipient
}
