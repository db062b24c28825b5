package middleware

import (
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

// Config holds the policy knobs of the middleware set.
type Config struct {
	// Roles maps a role name to the permissions it holds.
	Roles map[string][]string
	// RateLimitPerMin is the per-client request budget. Zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	permissions map[string]map[string]struct{}
	limiter     *rateLimiter
	metrics     *Metrics
}

func New(l log.Logger, jwtManager scope.Manager, cfg Config, metrics *Metrics) Middleware {
	perms := make(map[string]map[string]struct{}, len(cfg.Roles))
	for role, list := range cfg.Roles {
		set := make(map[string]struct{}, len(list))
		for _, p := range list {
			set[p] = struct{}{}
		}
		perms[role] = set
	}

	var limiter *rateLimiter
	if cfg.RateLimitPerMin > 0 {
		limiter = newRateLimiter(cfg.RateLimitPerMin)
	}

	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		permissions: perms,
		limiter:     limiter,
		metrics:     metrics,
	}
}
