package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// windowEntry tracks request counts per IP within a sliding window.
type windowEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type ipLimiter struct {
	entries map[string]*windowEntry
	mu      sync.Mutex
	limit   int
	window  time.Duration
	msg     string
}

func newIPLimiter(limit int, window time.Duration, msg string) *ipLimiter {
	l := &ipLimiter{
		entries: make(map[string]*windowEntry),
		limit:   limit,
		window:  window,
		msg:     msg,
	}
	go l.purgeLoop()
	return l
}

func (l *ipLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		entry, ok := l.entries[ip]
		if !ok {
			entry = &windowEntry{}
			l.entries[ip] = entry
		}
		l.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(l.window)
		}

		entry.count++
		if entry.count > l.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.msg))
			return
		}
		c.Next()
	}
}

// purgeLoop removes expired entries so IPs that never return do not
// accumulate forever.
func (l *ipLimiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0
		l.mu.Lock()
		for ip, entry := range l.entries {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
			entry.mu.Unlock()
		}
		remaining := len(l.entries)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter entries purged")
		}
	}
}

// RateLimiter returns a general-purpose sliding-window limiter per IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}

// LoginRateLimiter limits login attempts to 20 per minute per IP. It runs in
// front of the credential check, so the per-account lockout counter stays
// meaningful under brute force.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}
