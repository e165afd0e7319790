package httpclient

import (
	"crypto/tls"
	"fmt"
	"net/http"
)

// ExecContext is the prepared execution context for a request: its channel,
// the TLS context when secure, the optional cookie jar and the *http.Client
// assembled from them. It is never mutated after SelectTransport returns and
// is shared by reference with chained requests.
type ExecContext struct {
	secure     bool
	tlsConfig  *tls.Config
	jar        http.CookieJar
	httpClient *http.Client
}

// SelectTransport prepares the execution context for req. A secure request
// gets a TLS context; failing to build one aborts with an ErrCodeTLSConfig
// error. A non-nil jar is attached to the client. No I/O is performed.
func SelectTransport(cfg Config, req *Request, jar http.CookieJar) (*ExecContext, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	ec := &ExecContext{secure: req.Secure(), jar: jar}
	if ec.secure {
		tlsCfg, err := cfg.TLS.ClientConfig()
		if err != nil {
			return nil, NewTLSConfigError(err)
		}
		ec.tlsConfig = tlsCfg
		transport.TLSClientConfig = tlsCfg
	}

	ec.httpClient = &http.Client{
		Transport:     transport,
		Timeout:       cfg.Timeout,
		CheckRedirect: redirectPolicy(ec.secure, cfg.MaxRedirects),
	}
	if jar != nil {
		ec.httpClient.Jar = jar
	}
	return ec, nil
}

// Secure reports whether the context runs a secure channel.
func (ec *ExecContext) Secure() bool { return ec.secure }

// TLSConfig returns the TLS context, nil for plain channels.
func (ec *ExecContext) TLSConfig() *tls.Config { return ec.tlsConfig }

// Jar returns the attached cookie jar, if any.
func (ec *ExecContext) Jar() http.CookieJar { return ec.jar }

// Unwrap returns the underlying *http.Client for advanced use cases.
func (ec *ExecContext) Unwrap() *http.Client { return ec.httpClient }

// redirectPolicy keeps followed redirects on the channel the context was
// built for and caps how many are followed.
func redirectPolicy(secure bool, maxRedirects int) func(*http.Request, []*http.Request) error {
	return func(next *http.Request, via []*http.Request) error {
		if maxRedirects < 0 {
			return http.ErrUseLastResponse
		}
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		target := next.URL.String()
		if IsSecureURL(target) != secure {
			return NewSecurityMismatchError(secure, target)
		}
		return nil
	}
}
