// Package referral implements the referral intake endpoint. A submitted form
// becomes a transactional email to the operator, with the referrer's address
// set as Reply-To and an optional shop logo carried as an attachment.
package referral
