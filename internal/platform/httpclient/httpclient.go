// Package httpclient arma los *http.Client salientes de los adapters (timeouts y transport).
package httpclient

import (
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
)

type Options struct {
	Timeout time.Duration
	// Transport opcional (tests). nil => transport propio con timeouts de dial/TLS.
	Transport http.RoundTripper
}

// New crea un *http.Client con timeout total y transport acotado.
func New(opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := opts.Transport
	if tr == nil {
		tr = newTransport()
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 20 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
	}
}
