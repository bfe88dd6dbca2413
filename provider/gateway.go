// Package provider connects the planner to the external flight and
// train data services. Each service is reached through a Gateway; the
// Manager routes tool calls to the right gateway by tool name.
package provider

import (
	"context"
	"errors"
	"time"
)

// ErrNotRunning is returned when a tool call is attempted against a
// gateway whose backing service is not available.
var ErrNotRunning = errors.New("provider not running")

// Default per-call timeouts. Flight queries are slow because the
// upstream scrapes live fare data; station-code lookups are a simple
// dictionary read.
const (
	DefaultFlightTimeout      = 120 * time.Second
	DefaultTrainTimeout       = 60 * time.Second
	DefaultStationCodeTimeout = 30 * time.Second
)

// Gateway is one provider connection. CallTool is synchronous to the
// caller and must respect the timeout; implementations return the raw
// text payload which the parsers interpret.
type Gateway interface {
	CallTool(ctx context.Context, name string, args map[string]any, timeout time.Duration) (string, error)
	Running() bool
	Close() error
}
