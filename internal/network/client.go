package network

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// ClientFactory creates outbound HTTP clients sharing one proxy setting.
type ClientFactory struct {
	proxyURL string
}

// NewClientFactory creates a new client factory. An empty proxyURL means a
// direct connection.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: strings.TrimSpace(proxyURL)}
}

// NewHTTPClient creates a standard http.Client with proxy configuration.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	client := &http.Client{Timeout: timeout}
	if f.proxyURL != "" {
		client.Transport = newTransportWithProxy(f.proxyURL)
	}
	return client
}

// ProxyURL returns the configured proxy URL with credentials redacted.
func (f *ClientFactory) ProxyURL() string {
	if f.proxyURL == "" {
		return ""
	}
	parsed, err := url.Parse(f.proxyURL)
	if err != nil {
		return "invalid"
	}
	return parsed.Redacted()
}

// newTransportWithProxy creates an http.Transport with proper proxy support.
// For SOCKS5 proxies, it uses golang.org/x/net/proxy for correct handling.
// For HTTP/HTTPS proxies, it uses the standard http.ProxyURL.
func newTransportWithProxy(proxyURL string) *http.Transport {
	base := http.DefaultTransport.(*http.Transport).Clone()

	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Host == "" {
		return base
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{
				User: parsed.User.Username(),
			}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return base
		}

		base.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			base.DialContext = cd.DialContext
		} else {
			base.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
		return base
	}

	base.Proxy = http.ProxyURL(parsed)
	return base
}
