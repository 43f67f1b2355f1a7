package middleware

import (
	"api-scaffold/config"
	"api-scaffold/pkg/log"
	"api-scaffold/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	cors       config.CORSConfig
	rateLimit  config.RateLimitConfig
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cors config.CORSConfig, rateLimit config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: jwtManager,
		cors:       cors,
		rateLimit:  rateLimit,
	}
	if rateLimit.Enabled {
		mw.limiter = newRateLimiter(rateLimit)
	}
	return mw
}
