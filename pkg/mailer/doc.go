// Package mailer dispatches the transactional email produced by the
// lead-capture endpoints.
//
// A Dispatcher is constructed once per process and injected into request
// handlers; there is no package-level client state. Three implementations
// exist:
//
//   - Gmail: exchanges the configured OAuth refresh token for a short-lived
//     access token, then submits a MIME message through the Gmail API. A
//     failed or empty token exchange is reported as ErrNoToken so callers can
//     distinguish credential failures from transport failures.
//   - Postmark: sends through the Postmark transactional API for operators
//     not on Google Workspace.
//   - Dev: writes each message to disk as an .html/.txt file plus JSON
//     metadata instead of sending, for local development.
//
// Every implementation sends to the fixed operator address from its config;
// the per-message Reply-To is the submitter's address, so replying to a
// notification reaches the person who filled in the form.
package mailer
