package referral

import (
	"fmt"
	"html"
	"strings"

	"github.com/pageit/pageit-forms/pkg/mailer"
)

const (
	fromName       = "Pageit Referral"
	anonymousName  = "（無記名）"
	fallbackLogo   = "logo"
	fallbackType   = "application/octet-stream"
	subjectPattern = "【紹介申込み】%s さんより"
)

// Subject builds the operator-facing subject line. An empty referrer name
// is shown as （無記名）.
func (r Request) Subject() string {
	name := strings.TrimSpace(r.ReferrerName)
	if name == "" {
		name = anonymousName
	}
	return fmt.Sprintf(subjectPattern, name)
}

// BuildMessage renders the submission into an operator email. Every field
// value is HTML-escaped before interpolation.
func (r Request) BuildMessage() mailer.Message {
	rows := []struct {
		label string
		value string
	}{
		{"紹介者名", r.ReferrerName},
		{"紹介者メール", r.Email},
		{"お店の名前", r.ShopName},
		{"氏名（オーナー）", r.OwnerName},
		{"業種", r.IndustryDisplay()},
		{"紹介先メール", r.LeadEmail},
		{"電話番号", r.Phone},
		{"郵便番号", r.Zip},
		{"住所", r.Address},
		{"銀行名", r.BankName},
		{"支店名", r.BranchName},
		{"口座種別", r.AccountType},
		{"口座番号", r.AccountNumber},
		{"口座名義（カナ）", r.AccountHolderKana},
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family:system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial;">`)
	b.WriteString(`<h2>【紹介申込み】</h2>`)
	b.WriteString(`<table style="border-collapse:collapse;border:1px solid #ddd;">`)
	for _, row := range rows {
		fmt.Fprintf(&b,
			`<tr><td style="padding:6px 10px;border:1px solid #ddd;"><b>%s</b></td><td style="padding:6px 10px;border:1px solid #ddd;">%s</td></tr>`,
			html.EscapeString(row.label), html.EscapeString(row.value))
	}
	if links := r.CleanLinks(); len(links) > 0 {
		escaped := make([]string, len(links))
		for i, l := range links {
			escaped[i] = html.EscapeString(l)
		}
		fmt.Fprintf(&b,
			`<tr><td style="padding:6px 10px;border:1px solid #ddd;"><b>リンク</b></td><td style="padding:6px 10px;border:1px solid #ddd;">%s</td></tr>`,
			strings.Join(escaped, "<br>"))
	}
	b.WriteString(`</table>`)
	if strings.TrimSpace(r.Memo) != "" {
		fmt.Fprintf(&b,
			`<p style="margin-top:12px;"><b>メモ:</b></p><pre style="white-space:pre-wrap;background:#f7f7f7;padding:10px;border-radius:6px;border:1px solid #eee;">%s</pre>`,
			html.EscapeString(r.Memo))
	}
	fmt.Fprintf(&b,
		`<p style="margin-top:12px;">このメールに返信すると <b>%s</b> へ返答できます（Reply-To）。</p>`,
		html.EscapeString(r.Email))
	b.WriteString(`</div>`)

	msg := mailer.Message{
		FromName: fromName,
		ReplyTo:  r.Email,
		Subject:  r.Subject(),
		HTMLBody: b.String(),
	}
	if !r.Logo.IsEmpty() {
		name := r.Logo.Filename
		if name == "" {
			name = fallbackLogo
		}
		ct := r.Logo.ContentType()
		if ct == "" {
			ct = fallbackType
		}
		msg.Attachments = append(msg.Attachments, mailer.Attachment{
			Filename:    name,
			ContentType: ct,
			Content:     r.Logo.Content,
		})
	}
	return msg
}
