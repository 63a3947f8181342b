package middleware

import (
	"items-fixture-api/config"
	"items-fixture-api/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers registered on every
// route.
type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig
	limiters  *clientLimiters
}

func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		rateLimit: rateLimit,
		limiters:  newClientLimiters(rateLimit.PerMinute),
	}
}
