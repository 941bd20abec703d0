package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	"gopkg.in/gomail.v2"
)

// gmailDispatcher sends through the Gmail API, authorizing each send with an
// access token freshly exchanged from the configured refresh token.
type gmailDispatcher struct {
	cfg   Config
	oauth *oauth2.Config

	// send submits a raw RFC 2822 message; replaced in tests.
	send func(ctx context.Context, token *oauth2.Token, raw string) error
}

// NewGmailDispatcher creates a Gmail-backed Dispatcher. Only the sender
// address is validated here: missing OAuth credentials are a runtime
// credential failure, not a construction error.
func NewGmailDispatcher(cfg Config) (Dispatcher, error) {
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}

	d := &gmailDispatcher{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURI,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmail.GmailSendScope},
		},
	}
	d.send = d.sendViaAPI
	return d, nil
}

// Dispatch exchanges the refresh token for an access token, then submits the
// message. Token-exchange failures are reported as ErrNoToken; everything
// after a successful exchange maps to ErrSendFailed.
func (d *gmailDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	token, err := d.exchangeToken(ctx)
	if err != nil {
		return err
	}

	raw, err := d.encodeMessage(msg)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	if err := d.send(ctx, token, raw); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func (d *gmailDispatcher) exchangeToken(ctx context.Context) (*oauth2.Token, error) {
	if d.cfg.Google.RefreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh token configured", ErrNoToken)
	}

	ts := d.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: d.cfg.Google.RefreshToken})
	token, err := ts.Token()
	if err != nil {
		return nil, errors.Join(ErrNoToken, err)
	}
	if token.AccessToken == "" {
		return nil, ErrNoToken
	}
	return token, nil
}

// encodeMessage renders the message as base64url-encoded RFC 2822, the form
// the Gmail API expects in Message.Raw.
func (d *gmailDispatcher) encodeMessage(msg Message) (string, error) {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", d.cfg.SenderEmail, msg.FromName)
	m.SetHeader("To", d.cfg.Operator())
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	for _, att := range msg.Attachments {
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(att.Content)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		m.Attach(att.Filename, settings...)
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

func (d *gmailDispatcher) sendViaAPI(ctx context.Context, token *oauth2.Token, raw string) error {
	svc, err := gmail.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return err
	}
	_, err = svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	return err
}
