package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/passcheck/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
		{name: "cloudflare wins", headers: map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Real-IP": "198.51.100.1"}, remoteAddr: "10.0.0.1:1", want: "203.0.113.5"},
		{name: "first valid forwarded entry", headers: map[string]string{"X-Forwarded-For": "bogus, 198.51.100.7, 10.0.0.2"}, remoteAddr: "10.0.0.1:1", want: "198.51.100.7"},
		{name: "invalid headers fall through", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remoteAddr: "192.0.2.9:80", want: "192.0.2.9"},
		{name: "ipv4 mapped ipv6 is unmapped", remoteAddr: "[::ffff:192.0.2.3]:80", want: "192.0.2.3"},
		{name: "ipv6", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "garbage", remoteAddr: "garbage", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(r))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got, key string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
		key = clientip.Key(r)
	}))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5555"
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "192.0.2.1", got)
	assert.Equal(t, "192.0.2.1", key)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	ex := clientip.LoggerExtractor()
	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(clientip.WithContext(context.Background(), "192.0.2.1"))
	assert.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())
}
