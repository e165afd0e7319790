// Package httpclient is a small HTTP client for fetching documents over
// secure or plain channels.
//
// A call runs in four steps: NewRequest builds an immutable request
// descriptor, SelectTransport prepares the execution context for its scheme
// (a TLS context for https, an optional cookie jar), the exchange is
// performed, and its raw outcome is normalized into a single Response shape.
//
// Transport failures (DNS, refused connections, TLS handshakes) and protocol
// failures (non-2xx/3xx statuses) are not returned as errors. They are
// encoded in the Response, with StatusCode set to StatusTransportFailure for
// the former, and surface through RaiseForStatus. Execute only returns an
// error for conditions the caller must not ignore: invalid requests, an
// unusable TLS context, security boundary violations and unsupported methods.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    Headers: map[string]string{"Accept": "application/json"},
//	})
//
//	resp, err := client.Get(ctx, "https://example.com/data")
//	if err != nil {
//	    return err
//	}
//	if err := resp.RaiseForStatus(); err != nil {
//	    return err
//	}
//
// # Chaining
//
// A Response can issue follow-up requests that reuse its execution context.
// The chained URL must keep the parent's channel: a secure parent cannot
// chain to http and a plain parent cannot chain to https.
//
//	jar, _ := httpclient.NewCookieJar()
//	login, _ := client.Get(ctx, loginURL, httpclient.WithCookieJar(jar))
//	page, err := login.Get(ctx, pageURL)
package httpclient
