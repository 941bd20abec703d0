package intake

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// maxLinks caps how many reference links one submission carries.
const maxLinks = 3

// buildPayload renders the snapshot into the multipart body the referral
// endpoint expects. Phone and zip are transmitted in normalized form rather
// than display form.
func (f *Form) buildPayload(s State) (contentType string, body *bytes.Buffer, err error) {
	body = &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := []struct {
		name  string
		value string
	}{
		{"referrerName", s.Referrer.ReferrerName},
		{"email", s.Referrer.Email},
		{"shopName", s.Lead.ShopName},
		{"ownerName", s.Lead.OwnerName},
		{"industry", s.Lead.Industry},
		{"industryOther", s.Lead.IndustryOther},
		{"leadEmail", s.Lead.LeadEmail},
		{"phone", f.phones.E164(s.Lead.PhoneDisplay)},
		{"zip", s.Lead.ZipDisplay},
		{"address", s.Lead.Address},
		{"bankName", s.Payout.BankName},
		{"branchName", s.Payout.BranchName},
		{"accountType", s.Payout.AccountType},
		{"accountNumber", s.Payout.AccountNumber},
		{"accountHolderKana", s.Payout.AccountHolderKana},
		{"memo", s.Lead.Memo},
	}
	for _, field := range fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return "", nil, fmt.Errorf("write field %s: %w", field.name, err)
		}
	}

	written := 0
	for _, link := range s.Lead.Links {
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}
		if err := w.WriteField("links", link); err != nil {
			return "", nil, fmt.Errorf("write link: %w", err)
		}
		written++
		if written == maxLinks {
			break
		}
	}

	if !s.Lead.Logo.IsEmpty() {
		if err := writeLogo(w, s.Lead.Logo); err != nil {
			return "", nil, err
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("close multipart body: %w", err)
	}
	return w.FormDataContentType(), body, nil
}

func writeLogo(w *multipart.Writer, logo *Upload) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="logo"; filename="%s"`, escapeQuotes(logo.Filename)))
	ct := logo.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	header.Set("Content-Type", ct)

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create logo part: %w", err)
	}
	if _, err := part.Write(logo.Content); err != nil {
		return fmt.Errorf("write logo: %w", err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
