package gdpr

import (
	"errors"
	"testing"
	"time"

	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/prebid/go-gdpr/consentconstants"
	"github.com/stretchr/testify/assert"
)

func TestParseConsent(t *testing.T) {
	validTCF1Consent := "BONV8oqONXwgmADACHENAO7pqzAAppY"
	validTCF2Consent := "CPuKGCPPuKGCPNEAAAENCZCAAAAAAAAAAAAAAAAAAAAA"

	tests := []struct {
		name                string
		consent             string
		expectedListVersion uint16
		expectedError       error
	}{
		{
			name:                "valid_consent_with_encoding_version_2",
			consent:             validTCF2Consent,
			expectedListVersion: 153,
		},
		{
			name:    "invalid_consent_parsing_error",
			consent: "",
			expectedError: &ErrorMalformedConsent{
				Consent: "",
				Cause:   consentconstants.ErrEmptyDecodedConsent,
			},
		},
		{
			name:    "invalid_consent_version_validation_error",
			consent: validTCF1Consent,
			expectedError: &ErrorMalformedConsent{
				Consent: validTCF1Consent,
				Cause:   errors.New("invalid encoding format version: 1"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedConsent, err := ParseConsent(tt.consent)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, parsedConsent)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, parsedConsent)
				assert.Equal(t, tt.consent, parsedConsent.String())
				assert.Equal(t, tt.expectedListVersion, parsedConsent.VendorListVersion())
				assert.False(t, parsedConsent.VendorAllowed(736))
			}
		})
	}
}

func TestValidateVersions(t *testing.T) {
	tests := []struct {
		name          string
		version       uint8
		policyVersion uint8
		expectedError error
	}{
		{
			name:    "valid_consent_version=2",
			version: 2,
		},
		{
			name:          "invalid_consent_version<2",
			version:       1,
			expectedError: errors.New("invalid encoding format version: 1"),
		},
		{
			name:          "invalid_consent_version>2",
			version:       3,
			expectedError: errors.New("invalid encoding format version: 3"),
		},
		{
			name:          "invalid_policy_version",
			version:       2,
			policyVersion: 5,
			expectedError: errors.New("invalid TCF policy version: 5"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mcs := mockConsentString{
				version:       tt.version,
				policyVersion: tt.policyVersion,
			}
			err := validateVersions(&mcs)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestVendorAllowed(t *testing.T) {
	tests := []struct {
		name     string
		vendor   bool
		purpose  bool
		expected bool
	}{
		{name: "vendor_and_purpose", vendor: true, purpose: true, expected: true},
		{name: "vendor_only", vendor: true},
		{name: "purpose_only", purpose: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := &ParsedConsent{consents: &mockConsentString{version: 2, vendor: tt.vendor, purpose: tt.purpose}}
			assert.Equal(t, tt.expected, pc.VendorAllowed(736))
		})
	}
}

func TestSignalFromDialogState(t *testing.T) {
	assert.Equal(t, SignalYes, SignalFromDialogState(max.ConsentDialogStateApplies))
	assert.Equal(t, SignalNo, SignalFromDialogState(max.ConsentDialogStateDoesNotApply))
	assert.Equal(t, SignalAmbiguous, SignalFromDialogState(max.ConsentDialogStateUnknown))
}

type mockConsentString struct {
	version       uint8
	policyVersion uint8
	vendor        bool
	purpose       bool
}

func (mcs *mockConsentString) Version() uint8               { return mcs.version }
func (mcs *mockConsentString) Created() time.Time           { return time.Time{} }
func (mcs *mockConsentString) LastUpdated() time.Time       { return time.Time{} }
func (mcs *mockConsentString) CmpID() uint16                { return 0 }
func (mcs *mockConsentString) CmpVersion() uint16           { return 0 }
func (mcs *mockConsentString) ConsentScreen() uint8         { return 0 }
func (mcs *mockConsentString) ConsentLanguage() string      { return "" }
func (mcs *mockConsentString) VendorListVersion() uint16    { return 0 }
func (mcs *mockConsentString) TCFPolicyVersion() uint8      { return mcs.policyVersion }
func (mcs *mockConsentString) MaxVendorID() uint16          { return 0 }
func (mcs *mockConsentString) VendorConsent(id uint16) bool { return mcs.vendor }

func (mcs *mockConsentString) PurposeAllowed(id consentconstants.Purpose) bool {
	return mcs.purpose && id == consentconstants.InfoStorageAccess
}
