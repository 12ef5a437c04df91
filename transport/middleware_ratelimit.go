package transport

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// RateLimitMiddleware applies a per-client sliding window stored in Redis.
// Redis failures let the request through.
func RateLimitMiddleware(limiter redisrepo.Repository, cfg config.RateLimitConfig, name string) func(http.Handler) http.Handler {
	proxies := parseTrustedProxies(cfg.TrustedProxies)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || cfg.Requests <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := "rate_limit:" + name + ":ip:" + clientIP(r, proxies)
			allowed, err := limiter.AllowRequest(r.Context(), key, cfg.Requests, cfg.Window)
			if err != nil {
				logger.Warn("[RateLimit] limiter unavailable", zap.String("key", key), zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// parseTrustedProxies accepts CIDRs or bare addresses; invalid entries are skipped.
func parseTrustedProxies(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if p, err := netip.ParsePrefix(e); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(e)
		if err != nil {
			logger.Warn("[RateLimit] ignoring trusted proxy", zap.String("entry", e))
			continue
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes
}

func trusted(addr netip.Addr, proxies []netip.Prefix) bool {
	addr = addr.Unmap()
	for _, p := range proxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// clientIP is the peer address. X-Forwarded-For is only read when the peer is a
// trusted proxy, walking right to left past further trusted hops.
func clientIP(r *http.Request, proxies []netip.Prefix) string {
	peer, err := netip.ParseAddrPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	ip := peer.Addr().Unmap()
	if !trusted(ip, proxies) {
		return ip.String()
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		ip = hop.Unmap()
		if !trusted(ip, proxies) {
			break
		}
	}
	return ip.String()
}
