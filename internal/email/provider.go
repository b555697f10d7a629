package email

import "context"

// Provider delivers outgoing mail.
type Provider interface {
	Send(ctx context.Context, email *Email) error
	Validate() error
}

// NoopProvider accepts and drops every message. Used when email is disabled.
type NoopProvider struct{}

func (NoopProvider) Send(ctx context.Context, email *Email) error { return ctx.Err() }
func (NoopProvider) Validate() error                              { return nil }
