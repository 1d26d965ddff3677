package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	pkgLog "personal-task-planner/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares.
type Middleware struct {
	l pkgLog.Logger

	ratePerMin int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates the middleware bundle. ratePerMin bounds per-client request
// rate; zero or negative disables limiting.
func New(l pkgLog.Logger, ratePerMin int) *Middleware {
	return &Middleware{
		l:          l,
		ratePerMin: ratePerMin,
		limiters:   make(map[string]*rate.Limiter),
	}
}
