// Package security builds the TLS context used for secure (https) channels.
//
//	cfg := security.TLSConfig{CAFile: "/path/to/ca.pem"}
//	tlsConfig, err := cfg.ClientConfig()
//
// Unlike an optional TLS block, ClientConfig always produces a usable
// configuration: the system roots are loaded and any configured CA, client
// certificate and server name are layered on top.
package security
