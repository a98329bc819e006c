package bidmachine

import (
	"testing"

	"github.com/prebid/bidmachine-max-adapter/gdpr"
	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"
)

const tcf2Consent = "CPuKGCPPuKGCPNEAAAENCZCAAAAAAAAAAAAAAAAAAAAA"

func TestUpdateSettings(t *testing.T) {
	parsed, err := gdpr.ParseConsent(tcf2Consent)
	require.NoError(t, err)

	type consentCall struct {
		hasConsent    bool
		consentString string
	}

	testCases := []struct {
		description           string
		consentState          max.ConsentDialogState
		params                max.AdapterParameters
		expectedCoppa         *bool
		expectedSubjectToGDPR *bool
		expectedConsent       *consentCall
	}{
		{
			description:  "nothing-set",
			consentState: max.ConsentDialogStateUnknown,
		},
		{
			description:   "age-restricted",
			consentState:  max.ConsentDialogStateUnknown,
			params:        max.AdapterParameters{AgeRestrictedUser: pointer.Bool(true)},
			expectedCoppa: pointer.Bool(true),
		},
		{
			description:   "not-age-restricted",
			consentState:  max.ConsentDialogStateUnknown,
			params:        max.AdapterParameters{AgeRestrictedUser: pointer.Bool(false)},
			expectedCoppa: pointer.Bool(false),
		},
		{
			description:           "gdpr-applies-with-consent",
			consentState:          max.ConsentDialogStateApplies,
			params:                max.AdapterParameters{HasUserConsent: pointer.Bool(true)},
			expectedSubjectToGDPR: pointer.Bool(true),
			expectedConsent:       &consentCall{hasConsent: true},
		},
		{
			description:           "gdpr-applies-no-consent-flag",
			consentState:          max.ConsentDialogStateApplies,
			expectedSubjectToGDPR: pointer.Bool(true),
		},
		{
			description:           "gdpr-applies-with-consent-string",
			consentState:          max.ConsentDialogStateApplies,
			params:                max.AdapterParameters{HasUserConsent: pointer.Bool(false), ConsentString: tcf2Consent},
			expectedSubjectToGDPR: pointer.Bool(true),
			expectedConsent:       &consentCall{hasConsent: false, consentString: parsed.String()},
		},
		{
			description:           "gdpr-applies-consent-derived-from-string",
			consentState:          max.ConsentDialogStateApplies,
			params:                max.AdapterParameters{ConsentString: tcf2Consent},
			expectedSubjectToGDPR: pointer.Bool(true),
			expectedConsent:       &consentCall{hasConsent: parsed.VendorAllowed(736), consentString: parsed.String()},
		},
		{
			description:           "gdpr-applies-malformed-consent-string",
			consentState:          max.ConsentDialogStateApplies,
			params:                max.AdapterParameters{HasUserConsent: pointer.Bool(true), ConsentString: "malformed"},
			expectedSubjectToGDPR: pointer.Bool(true),
			expectedConsent:       &consentCall{hasConsent: true},
		},
		{
			description:           "gdpr-does-not-apply",
			consentState:          max.ConsentDialogStateDoesNotApply,
			params:                max.AdapterParameters{HasUserConsent: pointer.Bool(true)},
			expectedSubjectToGDPR: pointer.Bool(false),
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			adapter := newTestAdapter(t, test.consentState)
			if test.expectedCoppa != nil {
				adapter.network.On("SetCoppa", *test.expectedCoppa).Once()
			}
			if test.expectedSubjectToGDPR != nil {
				adapter.network.On("SetSubjectToGDPR", *test.expectedSubjectToGDPR).Once()
			}
			if test.expectedConsent != nil {
				adapter.network.On("SetConsentConfig", test.expectedConsent.hasConsent, test.expectedConsent.consentString).Once()
			}

			adapter.updateSettings(&test.params)

			adapter.network.AssertExpectations(t)
			if test.expectedCoppa == nil {
				adapter.network.AssertNotCalled(t, "SetCoppa", true)
				adapter.network.AssertNotCalled(t, "SetCoppa", false)
			}
			if test.expectedConsent == nil {
				assert.Len(t, adapter.network.Calls, countNonNil(test.expectedCoppa, test.expectedSubjectToGDPR))
			}
		})
	}
}

func countNonNil(values ...*bool) int {
	n := 0
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}
