package bidmachine

import (
	"github.com/prebid/bidmachine-max-adapter/errortypes"
	"github.com/prebid/bidmachine-max-adapter/gdpr"
	"github.com/prebid/bidmachine-max-adapter/max"
)

// updateSettings pushes the host's privacy flags into the SDK's global configuration. It runs
// before every load and signal collection.
func (a *MediationAdapter) updateSettings(params *max.AdapterParameters) {
	if params.AgeRestrictedUser != nil {
		a.network.SetCoppa(*params.AgeRestrictedUser)
	}

	switch gdpr.SignalFromDialogState(a.sdk.ConsentDialogState()) {
	case gdpr.SignalYes:
		a.network.SetSubjectToGDPR(true)

		consent := a.parseConsent(params.ConsentString)
		consentString := ""
		if consent != nil {
			consentString = consent.String()
		}

		if params.HasUserConsent != nil {
			a.network.SetConsentConfig(*params.HasUserConsent, consentString)
		} else if consent != nil {
			a.network.SetConsentConfig(consent.VendorAllowed(a.gdprVendorID), consentString)
		}
	case gdpr.SignalNo:
		a.network.SetSubjectToGDPR(false)
	}
}

// parseConsent returns nil for an absent or malformed consent string.
func (a *MediationAdapter) parseConsent(consentString string) *gdpr.ParsedConsent {
	if consentString == "" {
		return nil
	}
	consent, err := gdpr.ParseConsent(consentString)
	if err != nil {
		warning := &errortypes.Warning{
			Message:     err.Error(),
			WarningCode: errortypes.MalformedConsentWarningCode,
		}
		a.e("Ignoring consent string (%d): %v", warning.Code(), warning)
		return nil
	}
	return consent
}
