package api

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimit configures per-client token buckets on the /v1 routes. A bucket
// holds up to Burst requests and regains one every Interval.
type RateLimit struct {
	Burst    int
	Interval time.Duration
	// TrustProxy keys clients by X-Forwarded-For and X-Real-IP. Enable it
	// only behind a proxy that overwrites those headers.
	TrustProxy bool
}

const (
	sweepInterval  = 5 * time.Minute
	staleBucketAge = time.Hour
)

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

type limiter struct {
	cfg RateLimit
	now func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newLimiter(cfg RateLimit) *limiter {
	return &limiter{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// take spends one token of key when one is left.
func (l *limiter) take(key string) (allowed bool, remaining int, resetAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > sweepInterval {
		for k, b := range l.buckets {
			if now.Sub(b.lastAccess) > staleBucketAge {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Burst, lastRefill: now}
		l.buckets[key] = b
	}

	if refills := int(min(int64(now.Sub(b.lastRefill)/l.cfg.Interval), int64(l.cfg.Burst))); refills > 0 {
		b.tokens = min(b.tokens+refills, l.cfg.Burst)
		b.lastRefill = b.lastRefill.Add(time.Duration(refills) * l.cfg.Interval)
		if b.tokens == l.cfg.Burst {
			b.lastRefill = now
		}
	}
	if b.tokens > 0 {
		b.tokens--
		allowed = true
	}
	b.lastAccess = now
	return allowed, b.tokens, b.lastRefill.Add(l.cfg.Interval)
}

func (l *limiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, resetAt := l.take(clientIP(r, l.cfg.TrustProxy))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.Burst))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			retry := int(math.Ceil(resetAt.Sub(l.now()).Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(max(1, retry)))
			writeJSON(w, http.StatusTooManyRequests, Response{Error: &ErrorDetail{
				Code:    CodeRateLimited,
				Message: "too many requests",
			}})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the address requests are limited by.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := parseIP(first); ip != "" {
				return ip
			}
		}
		if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := parseIP(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
