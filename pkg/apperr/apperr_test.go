package apperr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageit/pageit-forms/pkg/apperr"
	"github.com/pageit/pageit-forms/pkg/binder"
	"github.com/pageit/pageit-forms/pkg/mailer"
	"github.com/pageit/pageit-forms/pkg/validator"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	validationErr := validator.Apply(validator.RequiredString("email", ""))

	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{name: "unsupported media type", err: binder.ErrUnsupportedMediaType, want: apperr.KindShape},
		{name: "wrapped invalid json", err: fmt.Errorf("%w: unexpected end", binder.ErrInvalidJSON), want: apperr.KindShape},
		{name: "validation errors", err: validationErr, want: apperr.KindValidation},
		{name: "no token", err: mailer.ErrNoToken, want: apperr.KindCredential},
		{name: "send failed", err: mailer.ErrSendFailed, want: apperr.KindTransport},
		{name: "explicit wrap wins", err: apperr.New(apperr.KindTransport, assert.AnError), want: apperr.KindTransport},
		{name: "unknown", err: assert.AnError, want: apperr.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, apperr.Classify(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shape", apperr.KindShape.String())
	assert.Equal(t, "validation", apperr.KindValidation.String())
	assert.Equal(t, "credential", apperr.KindCredential.String())
	assert.Equal(t, "transport", apperr.KindTransport.String())
	assert.Equal(t, "unknown", apperr.KindUnknown.String())
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	err := apperr.New(apperr.KindCredential, mailer.ErrNoToken)
	assert.ErrorIs(t, err, mailer.ErrNoToken)
	assert.Contains(t, err.Error(), "credential")
}
