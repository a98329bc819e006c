package max

// AdFormat identifies an ad placement shape as the mediation host knows it.
type AdFormat string

const (
	AdFormatBanner       AdFormat = "BANNER"
	AdFormatLeader       AdFormat = "LEADER"
	AdFormatMREC         AdFormat = "MREC"
	AdFormatInterstitial AdFormat = "INTER"
	AdFormatRewarded     AdFormat = "REWARDED"
	AdFormatNative       AdFormat = "NATIVE"
)

// Label is the human readable name used in log lines.
func (f AdFormat) Label() string {
	switch f {
	case AdFormatBanner:
		return "banner"
	case AdFormatLeader:
		return "leader"
	case AdFormatMREC:
		return "mrec"
	case AdFormatInterstitial:
		return "interstitial"
	case AdFormatRewarded:
		return "rewarded"
	case AdFormatNative:
		return "native"
	}
	return string(f)
}
