package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// visitors holds one token bucket per client IP.
type visitors struct {
	mu      sync.Mutex
	rps     float64
	burst   int
	entries map[string]*limiterEntry
}

func (v *visitors) allow(ip string, now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	le, ok := v.entries[ip]
	if !ok {
		le = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(v.rps), v.burst)}
		v.entries[ip] = le
	}
	le.last = now
	return le.limiter.AllowN(now, 1)
}

// sweep forgets clients idle for longer than idle.
func (v *visitors) sweep(now time.Time, idle time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for k, e := range v.entries {
		if now.Sub(e.last) > idle {
			delete(v.entries, k)
		}
	}
}

func getIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		first, _, _ := strings.Cut(ip, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit applies a simple IP-based token bucket limiter.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	v := &visitors{rps: rps, burst: burst, entries: map[string]*limiterEntry{}}
	gcTicker := time.NewTicker(5 * time.Minute)
	go func() {
		for now := range gcTicker.C {
			v.sweep(now, 10*time.Minute)
		}
	}()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.allow(getIP(r), time.Now()) {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
