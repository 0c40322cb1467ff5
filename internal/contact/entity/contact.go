package entity

// SubmissionInput is a decoded contact form payload as received, before any type checks.
type SubmissionInput = any

// ContactData is a contact form submission that passed validation.
//
// Subject is optional and empty when absent. To is nil when the submitter did
// not name recipients; a non-nil empty slice means an explicit empty list.
type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
	To      []string
}

// ValidatedSubmission is the output of the contact validator.
type ValidatedSubmission = ContactData

// Violation is one failed input constraint.
type Violation struct {
	Field   string
	Message string
}

// SendEmailOptions is a provider-agnostic outgoing email.
type SendEmailOptions struct {
	To       []string
	Cc       []string
	Bcc      []string
	Subject  string
	Body     string
	HTMLBody string
	ReplyTo  string
}

// SendResult is the outcome of one delivery attempt.
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// Sent returns a successful result carrying the provider message id.
func Sent(messageID string) SendResult {
	return SendResult{Success: true, MessageID: messageID}
}

// Failed returns a failed result with a human-readable cause.
func Failed(msg string) SendResult {
	return SendResult{Error: msg}
}
