// Package httpclient builds the shared outbound client used by every vendor adapter.
package httpclient

import (
	"context"
	"net"
	"net/http"
	"time"

	"kinconnect/config"
)

const defaultTimeout = 180 * time.Second

type Options struct {
	PreferIPv4 bool
	Timeout    time.Duration
}

// NewFromConfig reads Options from the outbound config section.
func NewFromConfig(cfg *config.Config) *http.Client {
	return New(Options{
		PreferIPv4: cfg.Outbound.PreferIPv4,
		Timeout:    cfg.Outbound.Timeout,
	})
}

func New(opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dialer := &net.Dialer{
		Timeout:   15 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if opts.PreferIPv4 {
				return dialer.DialContext(ctx, "tcp4", addr)
			}

			return dialer.DialContext(ctx, network, addr)
		},
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   15 * time.Second,
		ResponseHeaderTimeout: 120 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
