package bidmachine

import (
	"testing"

	"github.com/prebid/bidmachine-max-adapter/max"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
	"github.com/stretchr/testify/assert"
)

func TestToMaxError(t *testing.T) {
	testCases := []struct {
		description  string
		networkCode  int
		expectedCode int
	}{
		{description: "no-connection", networkCode: bm.ErrorCodeNoConnection, expectedCode: max.ErrorCodeNoConnection},
		{description: "timeout", networkCode: bm.ErrorCodeTimeout, expectedCode: max.ErrorCodeTimeout},
		{description: "bad-request", networkCode: bm.ErrorCodeHTTPBadRequest, expectedCode: max.ErrorCodeBadRequest},
		{description: "server", networkCode: bm.ErrorCodeServer, expectedCode: max.ErrorCodeServerError},
		{description: "no-content", networkCode: bm.ErrorCodeNoContent, expectedCode: max.ErrorCodeNoFill},
		{description: "bad-content", networkCode: bm.ErrorCodeBadContent, expectedCode: max.ErrorCodeNoFill},
		{description: "expired", networkCode: bm.ErrorCodeExpired, expectedCode: max.ErrorCodeAdExpired},
		{description: "internal", networkCode: bm.ErrorCodeInternal, expectedCode: max.ErrorCodeInternalError},
		{description: "already-shown", networkCode: bm.ErrorCodeAlreadyShown, expectedCode: max.ErrorCodeUnspecified},
		{description: "destroyed", networkCode: bm.ErrorCodeDestroyed, expectedCode: max.ErrorCodeUnspecified},
		{description: "unknown", networkCode: 999, expectedCode: max.ErrorCodeUnspecified},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			maxError := toMaxError(bm.NewError(test.networkCode, "network says no"))

			assert.Equal(t, test.expectedCode, maxError.Code())
			assert.Equal(t, test.networkCode, maxError.ThirdPartyCode())
			assert.Equal(t, "network says no", maxError.ThirdPartyMessage())
		})
	}
}

func TestToMaxErrorKeepsHostMessage(t *testing.T) {
	maxError := toMaxError(bm.NewError(bm.ErrorCodeNoContent, "No content"))

	assert.Equal(t, max.NoFill.Message(), maxError.Message())
	assert.Equal(t, 204, maxError.Code())
	assert.Equal(t, 103, maxError.ThirdPartyCode())
}

func TestToMaxErrorNil(t *testing.T) {
	maxError := toMaxError(nil)

	assert.Equal(t, max.ErrorCodeUnspecified, maxError.Code())
	assert.Zero(t, maxError.ThirdPartyCode())
	assert.Empty(t, maxError.ThirdPartyMessage())
}
