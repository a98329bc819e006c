package bidmachine

import (
	"fmt"

	"github.com/prebid/openrtb/v20/openrtb2"
)

// BannerSize is one of the fixed inline creative sizes the SDK renders.
type BannerSize int

const (
	BannerSize320x50 BannerSize = iota + 1
	BannerSize300x250
	BannerSize728x90
)

// Format returns the size as an OpenRTB banner format.
func (s BannerSize) Format() openrtb2.Format {
	switch s {
	case BannerSize320x50:
		return openrtb2.Format{W: 320, H: 50}
	case BannerSize300x250:
		return openrtb2.Format{W: 300, H: 250}
	case BannerSize728x90:
		return openrtb2.Format{W: 728, H: 90}
	}
	return openrtb2.Format{}
}

func (s BannerSize) String() string {
	f := s.Format()
	return fmt.Sprintf("Size_%dx%d", f.W, f.H)
}

// MediaAssetType selects which native assets the SDK should fetch before reporting a load.
type MediaAssetType int

const (
	MediaAssetTypeIcon MediaAssetType = iota + 1
	MediaAssetTypeImage
	MediaAssetTypeVideo
)

// MediaAssetTypesAll requests every native asset.
var MediaAssetTypesAll = []MediaAssetType{MediaAssetTypeIcon, MediaAssetTypeImage, MediaAssetTypeVideo}

// InterstitialRequest loads a full screen ad for a winning bid.
type InterstitialRequest struct {
	BidPayload string
}

// RewardedRequest loads a rewarded ad for a winning bid.
type RewardedRequest struct {
	BidPayload string
}

// BannerRequest loads an inline ad of the given size for a winning bid.
type BannerRequest struct {
	Size       BannerSize
	BidPayload string
}

// NativeRequest loads a native ad for a winning bid.
type NativeRequest struct {
	MediaAssetTypes []MediaAssetType
	BidPayload      string
}
