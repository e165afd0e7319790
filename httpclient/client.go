package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/sheetfeed/logger"
	"github.com/kbukum/sheetfeed/observability"
)

// Client executes HEAD and GET requests. It holds configuration only; every
// call builds its own execution context.
type Client struct {
	config Config
	log    *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request logging.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{config: cfg, log: logger.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("httpclient")
	return c, nil
}

// CallOption configures a single call.
type CallOption func(*call)

type call struct {
	params  url.Values
	headers map[string]string
	jar     http.CookieJar
}

func newCall(opts []CallOption) call {
	var c call
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithParams sets query parameters. They replace any query in the URL.
func WithParams(params url.Values) CallOption {
	return func(c *call) { c.params = params }
}

// WithHeaders sets per-call headers, overriding client defaults.
func WithHeaders(headers map[string]string) CallOption {
	return func(c *call) { c.headers = headers }
}

// WithCookieJar attaches a cookie jar to the call and to any request
// chained from its response.
func WithCookieJar(jar http.CookieJar) CallOption {
	return func(c *call) { c.jar = jar }
}

// Execute builds, prepares and performs a single request.
func (c *Client) Execute(ctx context.Context, method Method, rawURL string, opts ...CallOption) (*Response, error) {
	if method.Valid() && !method.Supported() {
		return nil, NewUnsupportedError(method)
	}

	cl := newCall(opts)
	req, err := NewRequest(method, rawURL, cl.params, c.config.Headers, cl.headers)
	if err != nil {
		return nil, err
	}

	ec, err := SelectTransport(c.config, req, cl.jar)
	if err != nil {
		c.log.Debug("transport selection failed", logger.Fields(
			logger.FieldURL, req.URL(),
			logger.FieldError, err.Error(),
		))
		return nil, err
	}
	return c.run(ctx, req, ec)
}

// Head issues a HEAD request.
func (c *Client) Head(ctx context.Context, rawURL string, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, MethodHead, rawURL, opts...)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, rawURL string, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, MethodGet, rawURL, opts...)
}

// Post is declared but not implemented; it always returns ErrUnsupportedMethod.
func (c *Client) Post(ctx context.Context, rawURL string, opts ...CallOption) (*Response, error) {
	return nil, NewUnsupportedError(MethodPost)
}

// Put is declared but not implemented; it always returns ErrUnsupportedMethod.
func (c *Client) Put(ctx context.Context, rawURL string, opts ...CallOption) (*Response, error) {
	return nil, NewUnsupportedError(MethodPut)
}

// Delete is declared but not implemented; it always returns ErrUnsupportedMethod.
func (c *Client) Delete(ctx context.Context, rawURL string, opts ...CallOption) (*Response, error) {
	return nil, NewUnsupportedError(MethodDelete)
}

// run performs req through ec and wraps the outcome.
func (c *Client) run(ctx context.Context, req *Request, ec *ExecContext) (*Response, error) {
	if !req.Method().Supported() {
		return nil, NewUnsupportedError(req.Method())
	}
	if req.Secure() != ec.Secure() {
		return nil, NewSecurityMismatchError(ec.Secure(), req.URL())
	}

	requestID := uuid.NewString()
	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(observability.AttrRequestID, requestID),
			attribute.String(observability.AttrHTTPMethod, string(req.Method())),
			attribute.String(observability.AttrHTTPURL, req.URL()),
			attribute.Bool(observability.AttrSecure, req.Secure()),
		),
	)
	defer span.End()

	start := time.Now()
	out, err := perform(ctx, ec, req)
	if err != nil {
		observability.SetSpanError(ctx, err)
		c.log.Debug("request aborted", logger.Fields(
			logger.FieldRequestID, requestID,
			logger.FieldURL, req.URL(),
			logger.FieldError, err.Error(),
		))
		return nil, err
	}

	resp := wrap(req, ec, out)
	resp.client = c

	observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, resp.StatusCode)
	observability.SetSpanError(ctx, resp.RaiseForStatus())
	c.log.Debug("request completed", logger.MergeWithDuration(logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldMethod, string(req.Method()),
		logger.FieldURL, req.URL(),
		logger.FieldStatus, resp.StatusCode,
	), time.Since(start)))

	return resp, nil
}
