package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageit/pageit-forms/pkg/binder"
)

type referralForm struct {
	ReferrerName string            `form:"referrerName"`
	Email        string            `form:"email"`
	Links        []string          `form:"links"`
	Memo         string            `form:"memo"`
	Logo         binder.FileUpload `file:"logo"`
}

func newMultipartRequest(t *testing.T, fields map[string][]string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(name, v))
		}
	}
	for name, content := range files {
		fw, err := w.CreateFormFile(name, name+".png")
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/referral", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestMultipart_BindsValues(t *testing.T) {
	t.Parallel()

	req := newMultipartRequest(t, map[string][]string{
		"referrerName": {"山田 太郎"},
		"email":        {"yamada@example.com"},
		"links":        {"https://a.example", "https://b.example"},
	}, nil)

	var form referralForm
	require.NoError(t, binder.Multipart()(req, &form))

	assert.Equal(t, "山田 太郎", form.ReferrerName)
	assert.Equal(t, "yamada@example.com", form.Email)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, form.Links)
	assert.Empty(t, form.Memo, "absent fields stay zero valued")
}

func TestMultipart_RejectsWrongContentType(t *testing.T) {
	t.Parallel()

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/referral", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var form referralForm
		err := binder.Multipart()(req, &form)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/referral", nil)

		var form referralForm
		err := binder.Multipart()(req, &form)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})
}

func TestFile_BindsUpload(t *testing.T) {
	t.Parallel()

	logo := []byte{0x89, 'P', 'N', 'G'}
	req := newMultipartRequest(t, map[string][]string{"referrerName": {"x"}}, map[string][]byte{"logo": logo})

	var form referralForm
	require.NoError(t, binder.Multipart()(req, &form))
	require.NoError(t, binder.File()(req, &form))

	assert.Equal(t, "logo.png", form.Logo.Filename)
	assert.Equal(t, logo, form.Logo.Content)
	assert.Equal(t, int64(len(logo)), form.Logo.Size)
	assert.False(t, form.Logo.IsEmpty())
}

func TestFile_NoUploadLeavesZeroValue(t *testing.T) {
	t.Parallel()

	req := newMultipartRequest(t, map[string][]string{"referrerName": {"x"}}, nil)

	var form referralForm
	require.NoError(t, binder.File()(req, &form))
	assert.True(t, form.Logo.IsEmpty())
}

func TestJSON_Binds(t *testing.T) {
	t.Parallel()

	type contactReq struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}

	t.Run("valid body with extra keys", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/send-contact",
			strings.NewReader(`{"name":"山田","email":"a@b.co","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")

		var c contactReq
		require.NoError(t, binder.JSON()(req, &c))
		assert.Equal(t, "a@b.co", c.Email)
		assert.Equal(t, "hi", c.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/send-contact", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")

		var c contactReq
		assert.ErrorIs(t, binder.JSON()(req, &c), binder.ErrInvalidJSON)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/send-contact", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")

		var c contactReq
		assert.ErrorIs(t, binder.JSON()(req, &c), binder.ErrUnsupportedMediaType)
	})
}

func TestFileUpload_ContentType(t *testing.T) {
	t.Parallel()

	t.Run("from header", func(t *testing.T) {
		t.Parallel()
		f := binder.FileUpload{Header: map[string][]string{"Content-Type": {"image/png; charset=binary"}}}
		assert.Equal(t, "image/png", f.ContentType())
	})

	t.Run("from extension", func(t *testing.T) {
		t.Parallel()
		f := binder.FileUpload{Filename: "logo.svg", Header: map[string][]string{}}
		assert.Equal(t, "image/svg+xml", f.ContentType())
	})
}
