package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// JSON creates a JSON body binder.
//
// Unknown fields are tolerated: the marketing-site clients spread whole form
// snapshots into the payload, so strict decoding would reject otherwise valid
// submissions.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		if mediaType(contentType) != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			if err == io.EOF {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil
	}
}

// mediaType extracts the media type from a Content-Type header value,
// dropping parameters such as charset or boundary.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		return strings.TrimSpace(contentType[:idx])
	}
	return strings.TrimSpace(contentType)
}
