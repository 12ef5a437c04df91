package transport_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/muhammadheryan/storefront/cmd/config"
	contactmock "github.com/muhammadheryan/storefront/mocks/application/contact"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/transport"
	"github.com/muhammadheryan/storefront/utils/logger"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const contactBody = `{"name":"Sam","phone":"5550102000","message":"hi"}`

func newLimitedContact(t *testing.T, trustedProxies []string) (*contactmock.ContactApp, http.Handler) {
	t.Helper()
	logger.Set(zap.NewNop())
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	contactApp := contactmock.NewContactApp(t)
	h := transport.NewTransport(&transport.RestHandler{ContactApp: contactApp}, transport.Options{
		RateLimiter: redisrepo.NewRepository(client),
		RateLimit:   config.RateLimitConfig{Requests: 2, Window: time.Minute, TrustedProxies: trustedProxies},
	})
	return contactApp, h
}

func postContact(h http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(contactBody))
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimit_IgnoresSpoofedForwardedFor(t *testing.T) {
	contactApp, h := newLimitedContact(t, nil)
	contactApp.On("SubmitInquiry", mock.Anything, mock.Anything).Return(&model.ContactResponse{Success: true}, nil).Times(2)

	codes := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		codes = append(codes, postContact(h, "203.0.113.7:5123", fmt.Sprintf("198.51.100.%d", i+1)))
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, codes[:2])
	for _, code := range codes[2:] {
		assert.Equal(t, http.StatusTooManyRequests, code)
	}
}

func TestRateLimit_TrustedProxyForwardsClient(t *testing.T) {
	contactApp, h := newLimitedContact(t, []string{"10.0.0.0/8"})
	contactApp.On("SubmitInquiry", mock.Anything, mock.Anything).Return(&model.ContactResponse{Success: true}, nil).Times(4)

	// two clients behind the same proxy get separate windows
	assert.Equal(t, http.StatusOK, postContact(h, "10.1.2.3:443", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, postContact(h, "10.1.2.3:443", "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, postContact(h, "10.1.2.3:443", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, postContact(h, "10.1.2.3:443", "198.51.100.2"))

	// a client-supplied hop to the left of the real client is ignored
	assert.Equal(t, http.StatusOK, postContact(h, "10.1.2.3:443", "192.0.2.50, 198.51.100.3"))
	assert.Equal(t, http.StatusTooManyRequests, postContact(h, "10.1.2.3:443", "192.0.2.99, 198.51.100.1"))
}
