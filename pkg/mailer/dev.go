package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevDispatcher implements Dispatcher for local development. It saves each
// message (body, metadata, attachments) as files in a directory instead of
// sending anything.
type DevDispatcher struct {
	dir string
}

// NewDevDispatcher creates a dispatcher that writes messages to dir. The
// directory is created on first dispatch if it doesn't exist.
func NewDevDispatcher(dir string) *DevDispatcher {
	return &DevDispatcher{dir: dir}
}

type devMetadata struct {
	Timestamp   string   `json:"timestamp"`
	FromName    string   `json:"from_name"`
	ReplyTo     string   `json:"reply_to,omitempty"`
	Subject     string   `json:"subject"`
	Attachments []string `json:"attachments,omitempty"`
}

// Dispatch writes the message to disk.
func (d *DevDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject))

	if msg.HTMLBody != "" {
		if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(msg.HTMLBody), 0o644); err != nil {
			return fmt.Errorf("%w: failed to write HTML file: %v", ErrSendFailed, err)
		}
	}
	if msg.TextBody != "" {
		if err := os.WriteFile(filepath.Join(d.dir, base+".txt"), []byte(msg.TextBody), 0o644); err != nil {
			return fmt.Errorf("%w: failed to write text file: %v", ErrSendFailed, err)
		}
	}

	meta := devMetadata{
		Timestamp: now.Format(time.RFC3339),
		FromName:  msg.FromName,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
	}
	for i, att := range msg.Attachments {
		name := fmt.Sprintf("%s_att%d_%s", base, i, sanitizeFilename(att.Filename))
		if err := os.WriteFile(filepath.Join(d.dir, name), att.Content, 0o644); err != nil {
			return fmt.Errorf("%w: failed to write attachment: %v", ErrSendFailed, err)
		}
		meta.Attachments = append(meta.Attachments, name)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrSendFailed, err)
	}

	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename. Multibyte subjects
// may sanitize to nothing, in which case a fixed placeholder is used.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "mail"
	}
	return strings.ToLower(s)
}
