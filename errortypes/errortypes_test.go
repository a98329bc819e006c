package errortypes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCode(t *testing.T) {
	testCases := []struct {
		description  string
		err          error
		expectedCode int
	}{
		{
			description:  "timeout",
			err:          &Timeout{Message: "deadline"},
			expectedCode: TimeoutErrorCode,
		},
		{
			description:  "wrapped bad server response",
			err:          fmt.Errorf("fetch icon: %w", &BadServerResponse{Message: "500"}),
			expectedCode: BadServerResponseErrorCode,
		},
		{
			description:  "warning",
			err:          &Warning{Message: "consent", WarningCode: MalformedConsentWarningCode},
			expectedCode: MalformedConsentWarningCode,
		},
		{
			description:  "plain error",
			err:          errors.New("boom"),
			expectedCode: UnknownErrorCode,
		},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expectedCode, ReadCode(test.err), test.description)
	}
}

func TestSeverity(t *testing.T) {
	warning := &Warning{Message: "w"}
	fatal := &InvalidAdFormat{Message: "f"}

	assert.True(t, IsWarning(warning))
	assert.False(t, IsWarning(fatal))
	assert.False(t, IsWarning(errors.New("plain")))

	assert.True(t, ContainsFatalError([]error{warning, fatal}))
	assert.True(t, ContainsFatalError([]error{errors.New("plain")}))
	assert.False(t, ContainsFatalError([]error{warning}))

	assert.Equal(t, []error{warning}, WarningOnly([]error{fatal, warning}))
}

func TestAggregateErrors(t *testing.T) {
	assert.Equal(t, "", NewAggregateErrors("config", nil).Error())

	one := NewAggregateErrors("config", []error{errors.New("a")})
	assert.Equal(t, "config (1 error):\n  1: a\n", one.Error())

	two := NewAggregateErrors("config", []error{errors.New("a"), errors.New("b")})
	assert.Equal(t, "config (2 errors):\n  1: a\n  2: b\n", two.Error())

	timeout := &Timeout{Message: "icon"}
	var err error = NewAggregateErrors("fetch", []error{errors.New("a"), timeout})
	assert.ErrorIs(t, err, timeout)
	assert.Equal(t, TimeoutErrorCode, ReadCode(err))
}
