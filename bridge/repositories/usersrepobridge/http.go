// Package usersrepobridge contains HTTP route registration for accounts
// and authentication.
package usersrepobridge

import (
	"github.com/rsalas/taskdeck/core/repositories/usersrepo"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/logger"
	"github.com/rsalas/taskdeck/sdk/tokens"
)

// Config holds configuration for the user bridge.
type Config struct {
	Log        *logger.Logger
	Repository *usersrepo.Repository
	Tokens     *tokens.Tokens
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for accounts.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository, cfg.Tokens)

	group.POST("/auth/signup", b.httpSignup, cfg.Middleware...)
	group.POST("/auth/login", b.httpLogin, cfg.Middleware...)
}
