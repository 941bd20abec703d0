package mailer

// Config holds mail dispatch configuration.
//
// SenderEmail doubles as the operator inbox: every form notification is
// delivered back to the sender address, mirroring how the marketing site's
// forms have always worked. OperatorEmail overrides the delivery address when
// notifications should land in a separate inbox.
//
// The Google OAuth credentials are deliberately not required at load time: a
// missing refresh token surfaces as a credential-exchange failure on the
// first send rather than a startup crash, so the contact form degrades
// instead of taking the whole site backend down.
type Config struct {
	Driver        string `env:"MAIL_DRIVER" envDefault:"gmail"`
	SenderEmail   string `env:"SENDER_EMAIL,required"`
	OperatorEmail string `env:"OPERATOR_EMAIL"`

	Google   GoogleConfig
	Postmark PostmarkConfig

	// DevDir is where the dev driver writes messages.
	DevDir string `env:"MAIL_DEV_DIR" envDefault:"./tmp/mail"`
}

// GoogleConfig holds the OAuth client used for the Gmail driver.
type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RefreshToken string `env:"GOOGLE_REFRESH_TOKEN"`
	RedirectURI  string `env:"GOOGLE_REDIRECT_URI" envDefault:"https://developers.google.com/oauthplayground"`
}

// PostmarkConfig holds the tokens for the Postmark driver.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}

// Operator returns the delivery address for form notifications.
func (c Config) Operator() string {
	if c.OperatorEmail != "" {
		return c.OperatorEmail
	}
	return c.SenderEmail
}
