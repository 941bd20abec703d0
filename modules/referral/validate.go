package referral

import "github.com/pageit/pageit-forms/pkg/validator"

// Validate checks that every required field is present and reports all
// missing fields at once, in wire order. Field formats are not enforced
// here; the operator email carries the values verbatim.
func (r Request) Validate() error {
	return validator.Apply(
		validator.RequiredString("referrerName", r.ReferrerName),
		validator.RequiredString("email", r.Email),
		validator.RequiredString("shopName", r.ShopName),
		validator.RequiredString("ownerName", r.OwnerName),
		validator.RequiredString("industry", r.Industry),
		validator.RequiredIf(r.Industry == IndustryOtherValue, "industryOther", r.IndustryOther),
		validator.RequiredString("leadEmail", r.LeadEmail),
		validator.RequiredString("phone", r.Phone),
		validator.RequiredString("zip", r.Zip),
		validator.RequiredString("address", r.Address),
		validator.RequiredString("bankName", r.BankName),
		validator.RequiredString("branchName", r.BranchName),
		validator.RequiredString("accountType", r.AccountType),
		validator.RequiredString("accountNumber", r.AccountNumber),
		validator.RequiredString("accountHolderKana", r.AccountHolderKana),
	)
}
