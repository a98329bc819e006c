package bidmachine

import (
	"testing"

	"github.com/prebid/openrtb/v20/openrtb2"
	"github.com/stretchr/testify/assert"
)

func TestBannerSizeFormat(t *testing.T) {
	testCases := []struct {
		size     BannerSize
		expected openrtb2.Format
		name     string
	}{
		{BannerSize320x50, openrtb2.Format{W: 320, H: 50}, "Size_320x50"},
		{BannerSize300x250, openrtb2.Format{W: 300, H: 250}, "Size_300x250"},
		{BannerSize728x90, openrtb2.Format{W: 728, H: 90}, "Size_728x90"},
		{BannerSize(0), openrtb2.Format{}, "Size_0x0"},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, test.size.Format())
		assert.Equal(t, test.name, test.size.String())
	}
}

func TestError(t *testing.T) {
	err := NewError(ErrorCodeNoContent, "No content")
	assert.Equal(t, ErrorCodeNoContent, err.Code())
	assert.Equal(t, "No content", err.Message())
	assert.Equal(t, `BMError{code=103, message="No content"}`, err.Error())
}
