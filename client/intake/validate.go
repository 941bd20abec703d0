package intake

import (
	"regexp"

	"github.com/pageit/pageit-forms/pkg/profilestore"
	"github.com/pageit/pageit-forms/pkg/validator"
)

var accountNumberPattern = regexp.MustCompile(`^[0-9]{6,12}$`)

// Validate mirrors the widget-level constraints so embedders can surface
// problems before a round trip: required fields, email shape, the account
// type choices and the 6-12 digit account number. The server re-validates
// on its own terms; passing here is no guarantee of acceptance.
func (f *Form) Validate() error {
	s := f.Snapshot()
	return validator.Apply(
		validator.RequiredString("referrerName", s.Referrer.ReferrerName),
		validator.RequiredString("email", s.Referrer.Email),
		validator.ValidEmail("email", s.Referrer.Email),
		validator.RequiredString("shopName", s.Lead.ShopName),
		validator.RequiredString("ownerName", s.Lead.OwnerName),
		validator.RequiredString("industry", s.Lead.Industry),
		validator.RequiredIf(s.Lead.Industry == "その他", "industryOther", s.Lead.IndustryOther),
		validator.RequiredString("leadEmail", s.Lead.LeadEmail),
		validator.ValidEmail("leadEmail", s.Lead.LeadEmail),
		validator.RequiredString("phone", s.Lead.PhoneDisplay),
		validator.RequiredString("zip", s.Lead.ZipDisplay),
		validator.RequiredString("address", s.Lead.Address),
		validator.RequiredString("bankName", s.Payout.BankName),
		validator.RequiredString("branchName", s.Payout.BranchName),
		validator.RequiredString("accountType", s.Payout.AccountType),
		validator.OneOf("accountType", s.Payout.AccountType,
			profilestore.AccountTypeOrdinary, profilestore.AccountTypeCurrent),
		validator.RequiredString("accountNumber", s.Payout.AccountNumber),
		validator.Matches("accountNumber", s.Payout.AccountNumber, accountNumberPattern),
		validator.RequiredString("accountHolderKana", s.Payout.AccountHolderKana),
	)
}
