package email

import "context"

// Message is a single outbound HTML email. The From identity belongs to the
// sender, so every message sent through one Sender shares it.
type Message struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// Sender is the mail capability consumed by the contact flow.
type Sender interface {
	Send(ctx context.Context, m Message) error
}
