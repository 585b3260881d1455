// Package tasksrepobridge contains HTTP route registration for tasks.
package tasksrepobridge

import (
	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/logger"
)

// Config holds configuration for the task bridge.
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for tasks.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.GET("/tasks/search", b.httpSearch, cfg.Middleware...)
	group.GET("/tasks/{task_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.PUT("/tasks/{task_id}", b.httpUpdate, cfg.Middleware...)
	group.PUT("/tasks/{task_id}/complete", b.httpComplete, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Middleware...)
}
