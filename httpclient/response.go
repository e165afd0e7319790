package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// StatusTransportFailure is the StatusCode of a response whose exchange
// never produced a status line.
const StatusTransportFailure = -1

// Response is the normalized result of an HTTP exchange. Its exported
// fields must not be modified by callers; a Response may be shared with
// the requests chained from it.
type Response struct {
	// StatusCode is the HTTP status code, or StatusTransportFailure.
	StatusCode int
	// Reason is the status reason phrase or the transport failure reason.
	Reason string
	// Headers are the response headers, first value per name.
	Headers map[string]string
	// Body is the raw response body. Empty for protocol and transport failures.
	Body []byte

	request     *Request
	exec        *ExecContext
	client      *Client
	header      http.Header
	cause       error
	cookies     []*http.Cookie
	cookiesOnce sync.Once
}

// wrap normalizes a raw outcome into a Response.
func wrap(req *Request, ec *ExecContext, out Outcome) *Response {
	resp := &Response{request: req, exec: ec}

	switch o := out.(type) {
	case Completed:
		var body []byte
		if o.Body != nil {
			var err error
			body, err = io.ReadAll(o.Body)
			_ = o.Body.Close()
			if err != nil {
				return wrap(req, ec, TransportFailure{
					Reason: fmt.Sprintf("read response body: %v", err),
					Err:    err,
				})
			}
		}
		resp.StatusCode = o.Status
		resp.Reason = o.Reason
		resp.header = o.Header.Clone()
		resp.Headers = flattenHeaders(o.Header)
		resp.Body = body
	case ProtocolFailure:
		resp.StatusCode = o.Status
		resp.Reason = o.Reason
		resp.header = o.Header.Clone()
		resp.Headers = flattenHeaders(o.Header)
	case TransportFailure:
		resp.StatusCode = StatusTransportFailure
		resp.Reason = o.Reason
		resp.Headers = map[string]string{}
		resp.cause = o.Err
	}
	return resp
}

// Request returns the request that produced the response.
func (r *Response) Request() *Request { return r.request }

// ExecContext returns the execution context the response was produced in.
func (r *Response) ExecContext() *ExecContext { return r.exec }

// TransportError returns the underlying error of a transport failure.
func (r *Response) TransportError() error { return r.cause }

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// RaiseForStatus returns an ErrCodeStatus error when the status code is
// outside 200-299. Transport failures are reported the same way.
func (r *Response) RaiseForStatus() error {
	if r.IsSuccess() {
		return nil
	}
	return NewStatusError(r.StatusCode, r.Reason)
}

// Text returns the body decoded as text.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("httpclient: decode JSON body: %w", err)
	}
	return nil
}

// Cookies returns the cookies set by the response.
func (r *Response) Cookies() []*http.Cookie {
	r.cookiesOnce.Do(func() {
		if r.header != nil {
			r.cookies = (&http.Response{Header: r.header}).Cookies()
		}
	})
	return r.cookies
}

// CookieMap returns the cookies set by the response keyed by name.
func (r *Response) CookieMap() map[string]string {
	out := make(map[string]string)
	for _, c := range r.Cookies() {
		out[c.Name] = c.Value
	}
	return out
}

// Chain executes a follow-up request through the response's execution
// context, sharing its TLS context and cookie jar. The target must use the
// same channel as the parent request; otherwise an ErrCodeSecurityMismatch
// error is returned before any I/O. WithCookieJar has no effect here.
func (r *Response) Chain(ctx context.Context, method Method, rawURL string, opts ...CallOption) (*Response, error) {
	parentSecure := r.request.Secure()
	if IsSecureURL(rawURL) != parentSecure {
		return nil, NewSecurityMismatchError(parentSecure, rawURL)
	}

	c := newCall(opts)
	req, err := NewRequest(method, rawURL, c.params, r.client.config.Headers, c.headers)
	if err != nil {
		return nil, err
	}
	req.secure = parentSecure
	return r.client.run(ctx, req, r.exec)
}

// Head chains a HEAD request.
func (r *Response) Head(ctx context.Context, rawURL string, opts ...CallOption) (*Response, error) {
	return r.Chain(ctx, MethodHead, rawURL, opts...)
}

// Get chains a GET request.
func (r *Response) Get(ctx context.Context, rawURL string, opts ...CallOption) (*Response, error) {
	return r.Chain(ctx, MethodGet, rawURL, opts...)
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
