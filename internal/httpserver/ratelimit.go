package httpserver

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/juju/ratelimit"
)

// Per-client rate limiting. The AI-backed endpoints cost far more tokens
// than the pure-formatting ones since each of them triggers an outbound
// completion call.

type rateLimiter struct {
	clients map[string]*ratelimit.Bucket
	mu      sync.RWMutex
	stop    chan struct{}
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*ratelimit.Bucket),
		stop:    make(chan struct{}),
	}
}

// clientKey identifies a client by host only; RemoteAddr carries an
// ephemeral port that would give every connection a fresh bucket.
func clientKey(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

func (rl *rateLimiter) getBucket(client string) *ratelimit.Bucket {
	rl.mu.RLock()
	bucket, exists := rl.clients[client]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if bucket, exists = rl.clients[client]; !exists {
			// 3 tokens per second, max 1000 tokens
			bucket = ratelimit.NewBucketWithRate(3, 1000)
			rl.clients[client] = bucket
		}
		rl.mu.Unlock()
	}

	return bucket
}

// startCleanup sweeps clients whose buckets have fully refilled until Stop
// is called.
func (rl *rateLimiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-rl.stop:
				return
			case <-ticker.C:
				rl.mu.Lock()
				for client, bucket := range rl.clients {
					if bucket.Available() == bucket.Capacity() {
						delete(rl.clients, client)
					}
				}
				rl.mu.Unlock()
			}
		}
	}()
}

// Stop terminates the background cleanup goroutine.
func (rl *rateLimiter) Stop() {
	close(rl.stop)
}

func tokenCost(r *http.Request) int64 {
	path := r.URL.Path

	switch path {
	case "/health":
		return 5
	case "/metrics":
		return 0
	}

	switch {
	case path == "/api/v1/symptoms" || path == "/api/v1/medicine":
		return 100 // each triggers an outbound completion call
	case strings.HasPrefix(path, "/api/v1/emergency"):
		return 5 // pure string formatting
	}

	return 20
}

func (s *Server) rateLimitMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bucket := s.limiter.getBucket(clientKey(r.RemoteAddr))
		cost := tokenCost(r)

		w.Header().Set("X-RateLimit-Limit", "1000")
		w.Header().Set("X-RateLimit-Rate", "3")

		if bucket.TakeAvailable(cost) < cost {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(bucket.Available(), 10))

		h.ServeHTTP(w, r)
	})
}
