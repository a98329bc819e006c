package max

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prebid/bidmachine-max-adapter/errortypes"
	"github.com/stretchr/testify/assert"
)

func TestHTTPImageFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/icon.png":
			w.Write([]byte("png-bytes"))
		case "/empty.png":
		case "/slow.png":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	fetcher := &HTTPImageFetcher{Client: server.Client()}

	body, err := fetcher.FetchImage(context.Background(), server.URL+"/icon.png")
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), body)

	_, err = fetcher.FetchImage(context.Background(), server.URL+"/missing.png")
	assert.Equal(t, errortypes.BadServerResponseErrorCode, errortypes.ReadCode(err))

	_, err = fetcher.FetchImage(context.Background(), server.URL+"/empty.png")
	assert.Equal(t, errortypes.BadServerResponseErrorCode, errortypes.ReadCode(err))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = fetcher.FetchImage(ctx, server.URL+"/slow.png")
	assert.Equal(t, errortypes.TimeoutErrorCode, errortypes.ReadCode(err))

	_, err = fetcher.FetchImage(context.Background(), "://bad")
	assert.Equal(t, errortypes.BadInputErrorCode, errortypes.ReadCode(err))

	_, err = fetcher.FetchImage(context.Background(), "icons/icon.png")
	assert.Equal(t, errortypes.BadInputErrorCode, errortypes.ReadCode(err))
}
