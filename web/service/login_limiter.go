package service

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	DefaultMaxLoginFailures = 5
	DefaultLoginWindow      = 15 * time.Minute
)

// LoginLimiter counts failed logins per client key. The window starts at the
// first failure and is not extended by later ones.
type LoginLimiter struct {
	failures    *cache.Cache
	maxFailures int
}

func NewLoginLimiter(maxFailures int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		failures:    cache.New(window, window),
		maxFailures: maxFailures,
	}
}

// Blocked reports whether key has used up its failed attempts.
func (l *LoginLimiter) Blocked(key string) bool {
	v, ok := l.failures.Get(key)
	if !ok {
		return false
	}
	n, _ := v.(int)
	return n >= l.maxFailures
}

// Fail records one failed attempt for key. An entry that expired or went
// bad between Add and Increment restarts the count at one.
func (l *LoginLimiter) Fail(key string) {
	if err := l.failures.Add(key, 1, cache.DefaultExpiration); err == nil {
		return
	}
	if err := l.failures.Increment(key, 1); err != nil {
		l.failures.Set(key, 1, cache.DefaultExpiration)
	}
}

func (l *LoginLimiter) Reset(key string) {
	l.failures.Delete(key)
}
