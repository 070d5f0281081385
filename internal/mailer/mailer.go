// Package mailer sends best-effort email notifications. Sending is never
// allowed to fail a request: implementations log failures and callers
// ignore the returned error outside of tests.
package mailer

import "context"

// Mailer delivers a plain-text notification. An empty recipient means the
// configured admin address.
type Mailer interface {
	Send(ctx context.Context, subject, body, recipient string) error
}
