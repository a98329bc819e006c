package max

// AdapterParameters holds what the host attaches to every adapter call.
type AdapterParameters struct {
	AdUnitID  string
	IsTesting bool

	// AgeRestrictedUser and HasUserConsent are nil when the publisher never set them.
	AgeRestrictedUser *bool
	HasUserConsent    *bool
	// ConsentString is the IAB TCF consent string, if the host CMP provided one.
	ConsentString string

	CustomParameters Bundle
	ServerParameters Bundle
}

// InitializationParameters accompany Initialize.
type InitializationParameters struct {
	AdapterParameters
}

// SignalCollectionParameters accompany CollectSignal.
type SignalCollectionParameters struct {
	AdapterParameters
	AdFormat AdFormat
}

// ResponseParameters accompany every load and show call.
type ResponseParameters struct {
	AdapterParameters
	// BidResponse is the opaque payload of the winning bid.
	BidResponse string
	// AlwaysRewardUser grants the reward on close even if the network never confirmed it.
	AlwaysRewardUser bool
}
