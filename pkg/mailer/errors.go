package mailer

import "errors"

var (
	ErrInvalidConfig = errors.New("mailer.errors.invalid_config")
	ErrNoToken       = errors.New("mailer.errors.no_access_token")
	ErrSendFailed    = errors.New("mailer.errors.send_failed")
	ErrEmptySubject  = errors.New("mailer.errors.empty_subject")
	ErrEmptyBody     = errors.New("mailer.errors.empty_body")
)
