package user

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Sign-in attempts are throttled per email address, using the strict tier
// applied to auth actions.
const (
	attemptRate  = rate.Limit(2)
	attemptBurst = 5
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type attemptLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

func newAttemptLimiter() *attemptLimiter {
	l := &attemptLimiter{visitors: make(map[string]*visitor)}
	go l.cleanupVisitors()
	return l
}

func (l *attemptLimiter) allow(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[email]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(attemptRate, attemptBurst)}
		l.visitors[email] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

// cleanupVisitors removes old entries to prevent the map growing forever.
func (l *attemptLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		l.mu.Lock()
		for email, v := range l.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(l.visitors, email)
			}
		}
		l.mu.Unlock()
	}
}
