package referral_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageit/pageit-forms/modules/referral"
	"github.com/pageit/pageit-forms/pkg/mailer"
	"github.com/pageit/pageit-forms/pkg/respond"
)

type recordingDispatcher struct {
	mu   sync.Mutex
	err  error
	sent []mailer.Message
}

func (d *recordingDispatcher) Dispatch(_ context.Context, msg mailer.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, msg)
	return nil
}

func (d *recordingDispatcher) messages() []mailer.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]mailer.Message(nil), d.sent...)
}

func newReferralRequest(t *testing.T, fields map[string]string, links []string, logo []byte, logoName string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for _, link := range links {
		require.NoError(t, w.WriteField("links", link))
	}
	if logo != nil {
		fw, err := w.CreateFormFile("logo", logoName)
		require.NoError(t, err)
		_, err = fw.Write(logo)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/referral", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"referrerName":      "山田 太郎",
		"email":             "taro@example.com",
		"shopName":          "カフェ・ド・テスト",
		"ownerName":         "佐藤 花子",
		"industry":          "飲食",
		"leadEmail":         "hanako@example.com",
		"phone":             "090-1234-5678",
		"zip":               "123-4567",
		"address":           "東京都千代田区1-2-3",
		"bankName":          "テスト銀行",
		"branchName":        "本店",
		"accountType":       "普通",
		"accountNumber":     "1234567",
		"accountHolderKana": "サトウ ハナコ",
	}
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) respond.Result {
	t.Helper()
	var res respond.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func TestHandler_ServeHTTP(t *testing.T) {
	t.Parallel()

	t.Run("forwards a complete submission", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{}
		handler := referral.NewHandler(dispatcher, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newReferralRequest(t, validFields(), []string{"https://shop.example"}, []byte("logo-bytes"), "logo.png"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeResult(t, rec).OK)

		sent := dispatcher.messages()
		require.Len(t, sent, 1)
		assert.Equal(t, "【紹介申込み】山田 太郎 さんより", sent[0].Subject)
		assert.Equal(t, "taro@example.com", sent[0].ReplyTo)
		assert.Contains(t, sent[0].HTMLBody, "https://shop.example")
		require.Len(t, sent[0].Attachments, 1)
		assert.Equal(t, "logo.png", sent[0].Attachments[0].Filename)
	})

	t.Run("rejects non-multipart bodies", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{}
		handler := referral.NewHandler(dispatcher, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/referral", strings.NewReader(`{"referrerName":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		res := decodeResult(t, rec)
		assert.False(t, res.OK)
		assert.Equal(t, "multipart/form-data で送信してください。", res.Message)
		assert.Empty(t, dispatcher.messages())
	})

	t.Run("lists every missing field", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{}
		handler := referral.NewHandler(dispatcher, nil)

		fields := validFields()
		delete(fields, "referrerName")
		delete(fields, "accountNumber")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newReferralRequest(t, fields, nil, nil, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		res := decodeResult(t, rec)
		assert.False(t, res.OK)
		assert.Equal(t, "必須項目が不足しています: referrerName, accountNumber", res.Message)
		assert.Empty(t, dispatcher.messages())
	})

	t.Run("requires clarification for the catch-all industry", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{}
		handler := referral.NewHandler(dispatcher, nil)

		fields := validFields()
		fields["industry"] = "その他"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newReferralRequest(t, fields, nil, nil, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "必須項目が不足しています: industryOther", decodeResult(t, rec).Message)
	})

	t.Run("reports dispatch failure without leaking detail", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{err: errors.Join(mailer.ErrSendFailed, mailer.ErrNoToken)}
		handler := referral.NewHandler(dispatcher, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newReferralRequest(t, validFields(), nil, nil, ""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		res := decodeResult(t, rec)
		assert.False(t, res.OK)
		assert.Equal(t, "メール送信に失敗しました。", res.Message)
		assert.Empty(t, dispatcher.messages())
	})

	t.Run("caps forwarded links", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{}
		handler := referral.NewHandler(dispatcher, nil)

		links := []string{"https://a.example", "https://b.example", "https://c.example", "https://d.example"}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newReferralRequest(t, validFields(), links, nil, ""))

		require.Equal(t, http.StatusOK, rec.Code)
		sent := dispatcher.messages()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].HTMLBody, "https://c.example")
		assert.NotContains(t, sent[0].HTMLBody, "https://d.example")
	})
}
