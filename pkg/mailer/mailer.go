package mailer

import "context"

// Dispatcher sends one transactional email per call. Implementations are safe
// for concurrent use; there is no retry at this layer.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

// Attachment is a binary file attached to a Message.
type Attachment struct {
	// Filename shown to the recipient. Empty names are replaced by callers
	// before dispatch.
	Filename string

	// ContentType is the declared MIME type, e.g. "image/png".
	ContentType string

	// Content is the raw file data.
	Content []byte
}

// Message is one outbound email. The sender and recipient addresses are fixed
// in the dispatcher's configuration; the message only carries what varies per
// submission.
type Message struct {
	FromName    string       // display name, e.g. "Pageit Referral"
	ReplyTo     string       // submitter's email address; optional
	Subject     string
	HTMLBody    string       // either HTMLBody or TextBody must be set
	TextBody    string
	Attachments []Attachment
}

// Validate reports whether the message carries enough to send.
func (m Message) Validate() error {
	if m.Subject == "" {
		return ErrEmptySubject
	}
	if m.HTMLBody == "" && m.TextBody == "" {
		return ErrEmptyBody
	}
	return nil
}
