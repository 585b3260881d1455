// Package telemetry provides support for per-request trace identifiers.
package telemetry

import (
	"context"

	"github.com/rsalas/taskdeck/sdk/cryptids"
)

type telKey int

const (
	traceIDKey telKey = iota + 1
)

const noTrace = "--------NOTRACE--------"

type Telemetry struct{}

// NewTelemetry creates a new telemetry instance.
func NewTelemetry() Telemetry {
	return Telemetry{}
}

func (t Telemetry) SetTraceID(ctx context.Context) context.Context {
	tid, err := cryptids.GenerateID()
	if err != nil {
		return context.WithValue(ctx, traceIDKey, noTrace)
	}
	return context.WithValue(ctx, traceIDKey, tid)
}

func (t Telemetry) GetTraceID(ctx context.Context) string {
	v, ok := ctx.Value(traceIDKey).(string)
	if !ok {
		return noTrace
	}
	return v
}
