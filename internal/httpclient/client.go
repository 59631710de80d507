package httpclient

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
)

const userAgent = "burstload"

type RequestBuilder struct {
	target string
}

// NewRequestBuilder returns a builder for GET requests to target. The target
// is used verbatim; parse errors surface from Build.
func NewRequestBuilder(target string) *RequestBuilder {
	return &RequestBuilder{target: target}
}

// Target returns the URL requests are built for.
func (b *RequestBuilder) Target() string {
	if b == nil {
		return ""
	}
	return b.target
}

func (b *RequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	if b == nil {
		return nil, errors.New("builder cannot be nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// Drain reads the rest of the response body and closes it, returning the
// number of bytes read. The connection goes back to the pool only after the
// body has been consumed.
func Drain(resp *http.Response) (int64, error) {
	if resp == nil || resp.Body == nil {
		return 0, nil
	}
	n, err := io.Copy(io.Discard, resp.Body)
	closeErr := resp.Body.Close()
	if err != nil {
		return n, err
	}
	return n, closeErr
}

// NewClient returns the client shared by every request of a burst. It sets no
// overall timeout; only the dialer and handshake defaults apply.
func NewClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          256,
		MaxIdleConnsPerHost:   256,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: transport,
	}
}
