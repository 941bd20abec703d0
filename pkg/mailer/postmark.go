package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// postmarkDispatcher sends through Postmark's transactional API. It exists
// for deployments whose operator inbox is not on Google Workspace; the wire
// behavior of the endpoints is identical across drivers.
type postmarkDispatcher struct {
	client *postmark.Client
	cfg    Config
}

// NewPostmarkDispatcher creates a Postmark-backed Dispatcher. Both tokens are
// required for runtime operation.
func NewPostmarkDispatcher(cfg Config) (Dispatcher, error) {
	if cfg.Postmark.ServerToken == "" {
		return nil, fmt.Errorf("%w: Postmark ServerToken is required", ErrInvalidConfig)
	}
	if cfg.Postmark.AccountToken == "" {
		return nil, fmt.Errorf("%w: Postmark AccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}

	return &postmarkDispatcher{
		client: postmark.NewClient(cfg.Postmark.ServerToken, cfg.Postmark.AccountToken),
		cfg:    cfg,
	}, nil
}

func (d *postmarkDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	email := postmark.Email{
		From:     fmt.Sprintf("%s <%s>", msg.FromName, d.cfg.SenderEmail),
		To:       d.cfg.Operator(),
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
		TextBody: msg.TextBody,
	}
	for _, att := range msg.Attachments {
		email.Attachments = append(email.Attachments, postmark.Attachment{
			Name:        att.Filename,
			Content:     base64.StdEncoding.EncodeToString(att.Content),
			ContentType: att.ContentType,
		})
	}

	resp, err := d.client.SendEmail(ctx, email)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
