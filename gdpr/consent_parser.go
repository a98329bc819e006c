package gdpr

import (
	"fmt"

	"github.com/prebid/go-gdpr/api"
	"github.com/prebid/go-gdpr/consentconstants"
	"github.com/prebid/go-gdpr/vendorconsent"
)

// An ErrorMalformedConsent is returned when a consent string cannot be used.
type ErrorMalformedConsent struct {
	Consent string
	Cause   error
}

func (e *ErrorMalformedConsent) Error() string {
	return fmt.Sprintf("malformed consent string %s: %v", e.Consent, e.Cause)
}

func (e *ErrorMalformedConsent) Unwrap() error {
	return e.Cause
}

// ParsedConsent is a validated TCF consent string.
type ParsedConsent struct {
	raw      string
	consents api.VendorConsents
}

// ParseConsent parses and validates the specified consent string.
func ParseConsent(consent string) (*ParsedConsent, error) {
	parsed, err := vendorconsent.ParseString(consent)
	if err != nil {
		return nil, &ErrorMalformedConsent{
			Consent: consent,
			Cause:   err,
		}
	}

	if err := validateVersions(parsed); err != nil {
		return nil, &ErrorMalformedConsent{
			Consent: consent,
			Cause:   err,
		}
	}

	return &ParsedConsent{raw: consent, consents: parsed}, nil
}

// validateVersions ensures that certain version fields in the consent string contain valid values.
func validateVersions(pc api.VendorConsents) error {
	version := pc.Version()
	if version != 2 {
		return fmt.Errorf("invalid encoding format version: %d", version)
	}
	policyVersion := pc.TCFPolicyVersion()
	if policyVersion > 4 {
		return fmt.Errorf("invalid TCF policy version: %d", policyVersion)
	}
	return nil
}

// String returns the consent string as received.
func (pc *ParsedConsent) String() string {
	return pc.raw
}

// VendorAllowed reports whether the user consented to vendorID storing and accessing
// information on the device.
func (pc *ParsedConsent) VendorAllowed(vendorID uint16) bool {
	return pc.consents.VendorConsent(vendorID) && pc.consents.PurposeAllowed(consentconstants.InfoStorageAccess)
}

// VendorListVersion is the GVL version the CMP encoded the string against.
func (pc *ParsedConsent) VendorListVersion() uint16 {
	return pc.consents.VendorListVersion()
}
