// Package ratelimit provides per-client request limiting using token buckets.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Rule limits one route. Path is matched as a prefix so "/match" also covers
// "/match/batch" unless a longer rule matches first.
type Rule struct {
	Path   string
	Method string
	Limit  int           // requests per Window
	Window time.Duration
	Burst  int           // bucket capacity, defaults to Limit
}

// Info describes the limiter's view of one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// DefaultRules returns the built-in limits. Batch scoring is the expensive
// path so it gets the strictest rule.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/match/batch", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/match", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/bias", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/organizations/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter tracks token buckets per client and rule.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rules    []Rule
	enabled  bool
	stopOnce sync.Once
	stop     chan struct{}
}

// New creates a limiter with the given rules. RATE_LIMIT_ENABLED=false
// disables limiting entirely. A background goroutine evicts idle buckets.
func New(rules []Rule) *Limiter {
	enabled := true
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			enabled = b
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		rules:   rules,
		enabled: enabled,
		stop:    make(chan struct{}),
	}
	if enabled {
		go l.evictLoop()
	}
	return l
}

// Allow reports whether a request from clientID to the given route may
// proceed, consuming a token if so.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.enabled {
		return true, Info{Allowed: true}
	}

	rule := l.match(path, method)
	if rule == nil {
		return true, Info{Allowed: true}
	}

	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	refillRate := float64(rule.Limit) / rule.Window.Seconds()
	key := clientID + ":" + rule.Method + ":" + rule.Path

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(capacity), lastRefill: now}
		l.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(capacity), b.tokens+elapsed*refillRate)
	b.lastRefill = now
	b.lastAccess = now

	info := Info{Limit: rule.Limit}
	if b.tokens >= 1.0 {
		b.tokens--
		info.Allowed = true
		info.Remaining = int(b.tokens)
		return true, info
	}

	info.Remaining = 0
	info.RetryAfter = time.Duration((1.0 - b.tokens) / refillRate * float64(time.Second))
	return false, info
}

// match returns the first rule whose path prefix and method match. Rules are
// checked in order, so more specific paths must come first.
func (l *Limiter) match(path, method string) *Rule {
	for i := range l.rules {
		r := &l.rules[i]
		if r.Method != method {
			continue
		}
		if len(path) >= len(r.Path) && path[:len(r.Path)] == r.Path {
			return r
		}
	}
	return nil
}

func (l *Limiter) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle(time.Hour)
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) evictIdle(age time.Duration) {
	cutoff := time.Now().Add(-age)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the eviction goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
