package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyModelError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind Kind
	}{
		{"quota message", errors.New("resource exhausted: quota limit reached"), KindQuotaExceeded},
		{"timeout message", errors.New("upstream timeout"), KindUpstreamTimeout},
		{"deadline exceeded", fmt.Errorf("call failed: %w", context.DeadlineExceeded), KindUpstreamTimeout},
		{"anything else", errors.New("connection reset by peer"), KindUnclassified},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := ClassifyModelError(tc.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tc.kind, appErr.Kind)
			assert.Equal(t, 500, appErr.Status)
		})
	}
}

func TestClassifyModelError_NilIsNil(t *testing.T) {
	assert.Nil(t, ClassifyModelError(nil))
}

func TestClassifyModelError_PreservesExistingAppError(t *testing.T) {
	original := InsufficientText()
	classified := ClassifyModelError(original)
	assert.Same(t, original, classified)
}

func TestInputErrorsAreBadRequests(t *testing.T) {
	for _, appErr := range []*AppError{
		MissingFile(),
		DescriptionTooShort(),
		UnsupportedFileType(),
		FileTooLarge(),
		InsufficientText(),
	} {
		assert.Equal(t, 400, appErr.Status, appErr.Kind)
	}
}

func TestWrappedErrorIsUnwrappable(t *testing.T) {
	cause := errors.New("boom")
	appErr := ExtractionFailed(cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "boom")
}
