// Package httpclient provides the HTTP plumbing shared by every request of a burst.
//
// [NewClient] creates the single connection-reuse context of a run: one
// *http.Client whose pooled transport is safe for concurrent use by every
// in-flight request. It imposes no overall request timeout.
//
//	client := httpclient.NewClient()
//
// [RequestBuilder] creates GET requests bound to a caller's context. The target
// URL is not validated up front, so a malformed URL fails each request on its
// own instead of aborting the run:
//
//	builder := httpclient.NewRequestBuilder(cfg.TargetURL)
//	req, err := builder.Build(ctx)
//
// [Drain] consumes and closes a response body so the measured latency includes
// the body transfer and the connection can be reused.
package httpclient
