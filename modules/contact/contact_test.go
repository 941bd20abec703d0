package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageit/pageit-forms/modules/contact"
	"github.com/pageit/pageit-forms/pkg/mailer"
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

func newContactRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/send-contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestHandler_ServeHTTP(t *testing.T) {
	t.Parallel()

	t.Run("forwards a complete submission", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{}
		handler := contact.NewHandler(dispatcher, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newContactRequest(`{"email":"taro@example.com","message":"資料を送ってください"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode(t, rec).Success)

		require.Len(t, dispatcher.sent, 1)
		msg := dispatcher.sent[0]
		assert.Equal(t, "お問い合わせ from taro@example.com", msg.Subject)
		assert.Equal(t, "taro@example.com", msg.ReplyTo)
		assert.Equal(t, "資料を送ってください", msg.TextBody)
		assert.Empty(t, msg.HTMLBody)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			body string
		}{
			{"empty object", `{}`},
			{"blank email", `{"email":"  ","message":"hi"}`},
			{"blank message", `{"email":"taro@example.com","message":""}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				dispatcher := &recordingDispatcher{}
				handler := contact.NewHandler(dispatcher, nil)

				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, newContactRequest(tt.body))

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "メールとメッセージが必要です", decode(t, rec).Error)
				assert.Empty(t, dispatcher.sent)
			})
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{}
		handler := contact.NewHandler(dispatcher, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newContactRequest(`{"email":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, dispatcher.sent)
	})

	t.Run("reports dispatch failure", func(t *testing.T) {
		t.Parallel()
		dispatcher := &recordingDispatcher{err: mailer.ErrSendFailed}
		handler := contact.NewHandler(dispatcher, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newContactRequest(`{"email":"taro@example.com","message":"hi"}`))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "送信に失敗しました", env.Error)
	})
}
