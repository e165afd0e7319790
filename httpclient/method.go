package httpclient

import "net/http"

// Method is an HTTP method known to the client.
type Method string

const (
	MethodHead   Method = http.MethodHead
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// Valid reports whether m is one of the declared methods.
func (m Method) Valid() bool {
	switch m {
	case MethodHead, MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	default:
		return false
	}
}

// Supported reports whether the client can execute m. Methods that carry a
// request body are declared but not implemented.
func (m Method) Supported() bool {
	return m == MethodHead || m == MethodGet
}
