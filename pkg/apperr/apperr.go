// Package apperr classifies endpoint failures for logging and future policy
// decisions. The wire contract never exposes these kinds; callers always see
// the generic failure message, while logs record what actually went wrong.
package apperr

import (
	"errors"
	"fmt"

	"github.com/pageit/pageit-forms/pkg/binder"
	"github.com/pageit/pageit-forms/pkg/mailer"
	"github.com/pageit/pageit-forms/pkg/validator"
)

// Kind discriminates the failure classes of a form submission.
type Kind int

const (
	// KindUnknown covers failures none of the other kinds claim.
	KindUnknown Kind = iota
	// KindShape: wrong content type or malformed payload. No external calls
	// were made.
	KindShape
	// KindValidation: a required field was empty. No external calls were made.
	KindValidation
	// KindCredential: the OAuth token exchange yielded no usable token. No
	// email was sent.
	KindCredential
	// KindTransport: the mail relay failed after a successful credential
	// exchange. The email may or may not have partially sent; it is treated
	// as failed regardless.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindValidation:
		return "validation"
	case KindCredential:
		return "credential"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error pairs an underlying error with its classification.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with an explicit kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Classify derives the Kind from known sentinel errors. Binding errors are
// shape errors, validator errors are validation errors, a failed token
// exchange is a credential error, and any other mailer failure is a
// transport error.
func Classify(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm):
		return KindShape
	case validator.IsValidationError(err):
		return KindValidation
	case errors.Is(err, mailer.ErrNoToken):
		return KindCredential
	case errors.Is(err, mailer.ErrSendFailed),
		errors.Is(err, mailer.ErrEmptySubject),
		errors.Is(err, mailer.ErrEmptyBody):
		return KindTransport
	default:
		return KindUnknown
	}
}
