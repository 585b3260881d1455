// Package tagsrepobridge contains HTTP route registration for the tag catalog.
package tagsrepobridge

import (
	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/logger"
)

// Config holds configuration for the tag bridge.
type Config struct {
	Log        *logger.Logger
	Repository *tagsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for tags.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tags", b.httpList, cfg.Middleware...)
	group.GET("/tags/{tag_id}", b.httpGetByID, cfg.Middleware...)
}
