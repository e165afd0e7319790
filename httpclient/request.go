package httpclient

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"net/url"
)

// Request describes an outbound HTTP request. It is immutable once built.
type Request struct {
	method  Method
	url     *url.URL
	headers map[string]string
	secure  bool
}

// NewRequest builds a request descriptor. Non-empty params are encoded and
// replace the URL's query component. Headers start from defaults and are
// overlaid by headers; header names are canonicalized before merging.
func NewRequest(method Method, rawURL string, params url.Values, defaults, headers map[string]string) (*Request, error) {
	if !method.Valid() {
		return nil, NewValidationError(fmt.Sprintf("unknown method %q", method))
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("parse url: %v", err))
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, NewValidationError(fmt.Sprintf("url must be absolute: %q", rawURL))
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	merged := make(map[string]string, len(defaults)+len(headers))
	for k, v := range defaults {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	for k, v := range headers {
		merged[http.CanonicalHeaderKey(k)] = v
	}

	return &Request{
		method:  method,
		url:     u,
		headers: merged,
		secure:  u.Scheme == "https",
	}, nil
}

// IsSecureURL reports whether rawURL selects a secure channel. The scheme
// is compared after parsing, so "HTTPS://host" is secure like net/http
// treats it. Unparseable URLs are not secure.
func IsSecureURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	return err == nil && u.Scheme == "https"
}

// Method returns the request method.
func (r *Request) Method() Method { return r.method }

// URL returns the final request URL, query included.
func (r *Request) URL() string { return r.url.String() }

// Secure reports whether the request runs over a secure channel.
func (r *Request) Secure() bool { return r.secure }

// Header returns a single header value by canonical or raw name.
func (r *Request) Header(key string) string {
	return r.headers[http.CanonicalHeaderKey(key)]
}

// Headers returns a copy of the merged request headers.
func (r *Request) Headers() map[string]string {
	return maps.Clone(r.headers)
}

// httpRequest converts the descriptor into a *http.Request bound to ctx.
func (r *Request) httpRequest(ctx context.Context) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, string(r.method), r.url.String(), nil)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}
	for k, v := range r.headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}
