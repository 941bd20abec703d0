package mailer

import "fmt"

// Mail driver names accepted in MAIL_DRIVER.
const (
	DriverGmail    = "gmail"
	DriverPostmark = "postmark"
	DriverDev      = "dev"
)

// New constructs the Dispatcher selected by cfg.Driver.
func New(cfg Config) (Dispatcher, error) {
	switch cfg.Driver {
	case "", DriverGmail:
		return NewGmailDispatcher(cfg)
	case DriverPostmark:
		return NewPostmarkDispatcher(cfg)
	case DriverDev:
		return NewDevDispatcher(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown mail driver %q", ErrInvalidConfig, cfg.Driver)
	}
}
