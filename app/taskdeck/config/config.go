// Package config carries the wiring for one running instance of taskdeck.
package config

import (
	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
	"github.com/rsalas/taskdeck/core/repositories/usersrepo"
	"github.com/rsalas/taskdeck/infrastructure/postgresdb"
	"github.com/rsalas/taskdeck/sdk/logger"
	"github.com/rsalas/taskdeck/sdk/telemetry"
	"github.com/rsalas/taskdeck/sdk/tokens"
)

// Repositories represents the repositories this instance of taskdeck needs.
type Repositories struct {
	Tasks *tasksrepo.Repository
	Tags  *tagsrepo.Repository
	Users *usersrepo.Repository
}

// TaskDeck is the overall configuration for the taskdeck application.
type TaskDeck struct {
	Build  string
	Logger *logger.Logger

	Repositories Repositories
	Tokens       *tokens.Tokens
	Telemetry    telemetry.Telemetry

	Pool *postgresdb.Pool
}
