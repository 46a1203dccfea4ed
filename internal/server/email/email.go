// Package email sends transactional mail through an external provider.
// The Sender interface keeps the provider swappable and lets tests use a
// fake instead of the network.
package email

import "context"

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message. Implementations must be safe to call
// sequentially from a single goroutine; nothing here fans out.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
