// Package mail defines the contracts for sending email messages.
//
// The main purpose is to keep the rest of the application independent from
// the transport details. Handlers and use cases work with the Mail interface
// and Message payload; the concrete delivery mechanism (AWS SES) is
// implemented in this package together with the closed classification of the
// provider errors it can report.
package mail
