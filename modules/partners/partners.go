// Package partners implements the partner-application endpoint. A single
// route accepts two payload shapes distinguished by a "type" discriminant:
// a multipart referral-style application and a JSON creator application.
package partners

import (
	"fmt"
	"html"
	"strings"

	"github.com/pageit/pageit-forms/pkg/binder"
	"github.com/pageit/pageit-forms/pkg/mailer"
)

const (
	fromName      = "Pageit Partners"
	anonymousName = "（無記名）"
	fallbackLogo  = "logo"
	fallbackType  = "application/octet-stream"

	// TypeReferral marks a multipart referral-style application.
	TypeReferral = "referral"
	// TypeCreator marks a JSON creator application.
	TypeCreator = "creator"
)

// ReferralApplication is the multipart referral-style payload. It carries a
// subset of the full referral form; none of the fields beyond the type
// discriminant are mandatory.
type ReferralApplication struct {
	Type         string `form:"type"`
	ReferrerName string `form:"referrerName"`
	Email        string `form:"email"`
	ShopName     string `form:"shopName"`
	OwnerName    string `form:"ownerName"`
	LeadEmail    string `form:"leadEmail"`
	Phone        string `form:"phone"`
	Zip          string `form:"zip"`
	Address      string `form:"address"`
	Memo         string `form:"memo"`

	Logo binder.FileUpload `file:"logo"`
}

// BuildMessage renders the application as an operator email with a bullet
// list layout. Every value is HTML-escaped.
func (a ReferralApplication) BuildMessage() mailer.Message {
	items := []struct {
		label string
		value string
	}{
		{"紹介者名", a.ReferrerName},
		{"紹介者メール", a.Email},
		{"お店の名前", a.ShopName},
		{"氏名", a.OwnerName},
		{"紹介先メール", a.LeadEmail},
		{"電話番号", a.Phone},
		{"郵便番号", a.Zip},
		{"住所", a.Address},
	}

	var b strings.Builder
	b.WriteString("<h2>紹介制度 申込み</h2>\n<ul>\n")
	for _, item := range items {
		fmt.Fprintf(&b, "<li><b>%s：</b>%s</li>\n", item.label, html.EscapeString(item.value))
	}
	b.WriteString("</ul>\n")
	fmt.Fprintf(&b, "<p><b>メモ：</b></p>\n<pre>%s</pre>\n", html.EscapeString(a.Memo))
	fmt.Fprintf(&b, "<p>このメールに返信すると <b>%s</b> へ返答できます（Reply-To）。</p>\n", html.EscapeString(a.Email))

	name := strings.TrimSpace(a.ReferrerName)
	if name == "" {
		name = anonymousName
	}

	msg := mailer.Message{
		FromName: fromName,
		ReplyTo:  a.Email,
		Subject:  fmt.Sprintf("【紹介申込み】%s さんより", name),
		HTMLBody: b.String(),
	}
	if !a.Logo.IsEmpty() {
		filename := a.Logo.Filename
		if filename == "" {
			filename = fallbackLogo
		}
		ct := a.Logo.ContentType()
		if ct == "" {
			ct = fallbackType
		}
		msg.Attachments = append(msg.Attachments, mailer.Attachment{
			Filename:    filename,
			ContentType: ct,
			Content:     a.Logo.Content,
		})
	}
	return msg
}

// CreatorApplication is the JSON payload for shooting and editing partners.
type CreatorApplication struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Area      string `json:"area"`
	Portfolio string `json:"portfolio"`
	Skills    string `json:"skills"`
}

// BuildMessage renders the application as an operator email.
func (a CreatorApplication) BuildMessage() mailer.Message {
	var b strings.Builder
	b.WriteString("<h2>撮影・編集パートナー 応募</h2>\n<ul>\n")
	fmt.Fprintf(&b, "<li><b>お名前：</b>%s</li>\n", html.EscapeString(a.Name))
	fmt.Fprintf(&b, "<li><b>メール：</b>%s</li>\n", html.EscapeString(a.Email))
	fmt.Fprintf(&b, "<li><b>活動エリア：</b>%s</li>\n", html.EscapeString(a.Area))
	fmt.Fprintf(&b, "<li><b>ポートフォリオ：</b>%s</li>\n", html.EscapeString(a.Portfolio))
	fmt.Fprintf(&b, "<li><b>スキル/機材：</b><pre>%s</pre></li>\n", html.EscapeString(a.Skills))
	b.WriteString("</ul>\n")

	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = anonymousName
	}
	return mailer.Message{
		FromName: fromName,
		ReplyTo:  a.Email,
		Subject:  fmt.Sprintf("【パートナー応募】%s さんより", name),
		HTMLBody: b.String(),
	}
}
