package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Outcome is the raw result of executing a request. Exactly one of
// Completed, ProtocolFailure or TransportFailure.
type Outcome interface {
	outcome()
}

// Completed is an exchange that produced a 2xx or 3xx status line and a
// body stream.
type Completed struct {
	Status int
	Reason string
	Header http.Header
	Body   io.ReadCloser
}

// ProtocolFailure is an exchange whose status is outside 2xx/3xx. Its body
// is not kept.
type ProtocolFailure struct {
	Status int
	Reason string
	Header http.Header
}

// TransportFailure is an exchange that never produced a status line.
type TransportFailure struct {
	Reason string
	Err    error
}

func (Completed) outcome()        {}
func (ProtocolFailure) outcome()  {}
func (TransportFailure) outcome() {}

// perform runs req through ec and classifies what came back. The returned
// error is reserved for security boundary violations raised while following
// redirects; every other failure is an Outcome.
func perform(ctx context.Context, ec *ExecContext, req *Request) (Outcome, error) {
	httpReq, err := req.httpRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := ec.httpClient.Do(httpReq)
	if err != nil {
		var hErr *Error
		if errors.As(err, &hErr) && hErr.Code == ErrCodeSecurityMismatch {
			return nil, hErr
		}
		return TransportFailure{Reason: transportReason(err), Err: err}, nil
	}

	reason := reasonPhrase(resp)
	if resp.StatusCode < 200 || resp.StatusCode > 399 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return ProtocolFailure{Status: resp.StatusCode, Reason: reason, Header: resp.Header}, nil
	}
	return Completed{Status: resp.StatusCode, Reason: reason, Header: resp.Header, Body: resp.Body}, nil
}

// reasonPhrase extracts the reason phrase from the status line.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// transportReason strips the *url.Error envelope, which only repeats the
// method and URL.
func transportReason(err error) string {
	var uErr *url.Error
	if errors.As(err, &uErr) && uErr.Err != nil {
		return uErr.Err.Error()
	}
	return err.Error()
}
