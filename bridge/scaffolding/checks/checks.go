// Package checks provides liveness and readiness handlers.
package checks

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rsalas/taskdeck/bridge/scaffolding/errs"
	"github.com/rsalas/taskdeck/infrastructure/postgresdb"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/logger"
)

// Config holds configuration for the checks bridge.
type Config struct {
	Build string
	Log   *logger.Logger
	Pool  *postgresdb.Pool
}

type bridge struct {
	build string
	pool  *postgresdb.Pool
}

// AddHttpRoutes registers the health endpoints.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		build: cfg.Build,
		pool:  cfg.Pool,
	}

	group.GET("/liveness", b.httpLiveness)
	group.GET("/readiness", b.httpReadiness)
}

type livenessResponse struct {
	Status     string `json:"status"`
	Build      string `json:"build"`
	Host       string `json:"host"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

// httpLiveness reports that the process is up. Failure here means the
// orchestrator should restart the service.
func (b *bridge) httpLiveness(ctx context.Context, r *http.Request) web.Encoder {
	host, err := os.Hostname()
	if err != nil {
		host = "unavailable"
	}

	return web.NewJSONResponse(livenessResponse{
		Status:     "up",
		Build:      b.build,
		Host:       host,
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	})
}

type readinessResponse struct {
	Status string `json:"status"`
}

// httpReadiness checks the database is reachable before reporting ready.
func (b *bridge) httpReadiness(ctx context.Context, r *http.Request) web.Encoder {
	if err := postgresdb.StatusCheck(ctx, b.pool); err != nil {
		return errs.Newf(errs.Internal, "database not ready")
	}

	return web.NewJSONResponse(readinessResponse{Status: "ready"})
}
