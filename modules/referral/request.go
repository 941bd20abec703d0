package referral

import (
	"fmt"
	"strings"

	"github.com/pageit/pageit-forms/pkg/binder"
)

// IndustryOtherValue is the industry choice that requires a free-form
// clarification in the IndustryOther field.
const IndustryOtherValue = "その他"

// maxLinks caps how many reference links a single submission carries.
const maxLinks = 3

// Request is a referral form submission as it arrives on the wire.
type Request struct {
	ReferrerName      string   `form:"referrerName"`
	Email             string   `form:"email"`
	ShopName          string   `form:"shopName"`
	OwnerName         string   `form:"ownerName"`
	Industry          string   `form:"industry"`
	IndustryOther     string   `form:"industryOther"`
	LeadEmail         string   `form:"leadEmail"`
	Phone             string   `form:"phone"`
	Zip               string   `form:"zip"`
	Address           string   `form:"address"`
	BankName          string   `form:"bankName"`
	BranchName        string   `form:"branchName"`
	AccountType       string   `form:"accountType"`
	AccountNumber     string   `form:"accountNumber"`
	AccountHolderKana string   `form:"accountHolderKana"`
	Memo              string   `form:"memo"`
	Links             []string `form:"links"`

	Logo binder.FileUpload `file:"logo"`
}

// IndustryDisplay renders the industry for the operator email. When the
// submitter picked the catch-all choice and typed a clarification, both are
// shown as "その他（clarification）".
func (r Request) IndustryDisplay() string {
	if r.Industry == IndustryOtherValue && strings.TrimSpace(r.IndustryOther) != "" {
		return fmt.Sprintf("%s（%s）", r.Industry, strings.TrimSpace(r.IndustryOther))
	}
	if r.Industry != "" {
		return r.Industry
	}
	return r.IndustryOther
}

// CleanLinks trims each submitted link, drops empty entries and keeps at
// most maxLinks of the rest, in submission order.
func (r Request) CleanLinks() []string {
	out := make([]string, 0, len(r.Links))
	for _, l := range r.Links {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
		if len(out) == maxLinks {
			break
		}
	}
	return out
}
