package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/apperror"
)

func TestAdvisoryOf(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation error",
			err:  &apperror.ValidationError{Advisory: "nhập dữ liệu nhé", Reason: "empty input"},
			want: "nhập dữ liệu nhé",
		},
		{
			name: "model error",
			err:  &apperror.ModelError{Advisory: "X"},
			want: "X",
		},
		{
			name: "extraction error",
			err:  &apperror.ExtractionError{Advisory: "thử lại nhé", Err: cause},
			want: "thử lại nhé",
		},
		{
			name: "wrapped extraction error",
			err:  fmt.Errorf("analyze: %w", &apperror.ExtractionError{Advisory: "thử lại nhé", Err: cause}),
			want: "thử lại nhé",
		},
		{
			name: "export error carries no advisory",
			err:  &apperror.ExportError{Path: "out.xlsx", Err: cause},
			want: "",
		},
		{
			name: "plain error",
			err:  cause,
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperror.AdvisoryOf(tt.err))
		})
	}
}

func TestErrorMessagesHideAdvisoryButKeepCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &apperror.ExtractionError{Advisory: "thử lại nhé", Err: cause}

	assert.NotContains(t, err.Error(), "thử lại nhé")
	assert.ErrorIs(t, err, cause)
}

func TestExportError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &apperror.ExportError{Path: "/tmp/out.xlsx", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/tmp/out.xlsx")
}
