package max

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/prebid/bidmachine-max-adapter/errortypes"
	"golang.org/x/net/context/ctxhttp"
)

const maxImageBytes = 4 << 20

// HTTPImageFetcher downloads images over HTTP. Hosts embed it to satisfy ImageFetcher.
type HTTPImageFetcher struct {
	Client *http.Client
}

func (f *HTTPImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	if !govalidator.IsRequestURL(url) {
		return nil, &errortypes.BadInput{Message: fmt.Sprintf("image fetch: %q is not an absolute URL", url)}
	}

	httpReq, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &errortypes.BadInput{Message: err.Error()}
	}

	httpResp, err := ctxhttp.Do(ctx, f.Client, httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &errortypes.Timeout{Message: fmt.Sprintf("image fetch %s: %v", url, err)}
		}
		return nil, &errortypes.FailedToFetchImage{Message: err.Error()}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, &errortypes.BadServerResponse{
			Message: fmt.Sprintf("image fetch %s: unexpected status code %d", url, httpResp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxImageBytes))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &errortypes.Timeout{Message: fmt.Sprintf("image fetch %s: %v", url, err)}
		}
		return nil, &errortypes.FailedToFetchImage{Message: err.Error()}
	}
	if len(body) == 0 {
		return nil, &errortypes.BadServerResponse{Message: fmt.Sprintf("image fetch %s: empty body", url)}
	}
	return body, nil
}
