// Package profilestore persists the referral form's "remember for next time"
// fields: who the referrer is and where payouts go. Nothing about the
// referred business is ever stored.
//
// Loads are forgiving by contract: missing or corrupt data yields nil without
// error so the form falls back to empty defaults, and partially stored data
// merges onto zero values when the recognized field set changes. There is no
// expiry and no versioning.
package profilestore

import "context"

// Account types accepted by the payout form, as they appear on the wire.
const (
	AccountTypeOrdinary = "普通"
	AccountTypeCurrent  = "当座"
)

// ReferrerProfile identifies who submitted the referral.
type ReferrerProfile struct {
	ReferrerName string `json:"referrerName"`
	Email        string `json:"email"`
}

// PayoutAccount is the bank account referral rewards are paid into.
type PayoutAccount struct {
	BankName          string `json:"bankName"`
	BranchName        string `json:"branchName"`
	AccountType       string `json:"accountType"`
	AccountNumber     string `json:"accountNumber"`
	AccountHolderKana string `json:"accountHolderKana"`
}

// Store reads and writes the two persisted slots. Load methods return nil
// when the slot is empty or unreadable; Save methods overwrite the slot.
type Store interface {
	LoadReferrer(ctx context.Context) (*ReferrerProfile, error)
	SaveReferrer(ctx context.Context, p ReferrerProfile) error
	LoadPayout(ctx context.Context) (*PayoutAccount, error)
	SavePayout(ctx context.Context, a PayoutAccount) error
}
