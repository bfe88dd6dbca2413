package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huanchong-99/Go-Home/config"
)

// Tool names exposed by the providers. The prefix selects the gateway.
const (
	ToolSearchFlights = "flight_searchFlightRoutes"
	ToolStationCodes  = "train_get-station-code-of-citys"
	ToolTrainTickets  = "train_get-tickets"
	flightToolPrefix  = "flight_"
	trainToolPrefix   = "train_"
)

// Manager owns the flight and train gateways and routes tool calls by
// name prefix. Either gateway may be absent; calls against a missing
// one fail with ErrNotRunning.
type Manager struct {
	flight Gateway
	train  Gateway

	flightTimeout      time.Duration
	trainTimeout       time.Duration
	stationCodeTimeout time.Duration
}

// NewManager builds a manager from already-constructed gateways. Nil
// gateways are allowed.
func NewManager(flight, train Gateway, cfg config.ProviderConfig) *Manager {
	m := &Manager{
		flight:             flight,
		train:              train,
		flightTimeout:      cfg.FlightTimeout,
		trainTimeout:       cfg.TrainTimeout,
		stationCodeTimeout: cfg.StationCodeTimeout,
	}
	if m.flightTimeout <= 0 {
		m.flightTimeout = DefaultFlightTimeout
	}
	if m.trainTimeout <= 0 {
		m.trainTimeout = DefaultTrainTimeout
	}
	if m.stationCodeTimeout <= 0 {
		m.stationCodeTimeout = DefaultStationCodeTimeout
	}
	return m
}

// NewManagerFromConfig constructs and starts gateways per the provider
// configuration. A command line takes precedence over a URL. Start
// errors are returned; a provider with neither command nor URL is
// simply absent.
func NewManagerFromConfig(ctx context.Context, cfg config.ProviderConfig) (*Manager, error) {
	flight, err := gatewayFromConfig(ctx, cfg.FlightCommand, cfg.FlightURL)
	if err != nil {
		return nil, fmt.Errorf("flight provider: %w", err)
	}
	train, err := gatewayFromConfig(ctx, cfg.TrainCommand, cfg.TrainURL)
	if err != nil {
		if flight != nil {
			_ = flight.Close()
		}
		return nil, fmt.Errorf("train provider: %w", err)
	}
	return NewManager(flight, train, cfg), nil
}

func gatewayFromConfig(ctx context.Context, command []string, url string) (Gateway, error) {
	if len(command) > 0 {
		g := NewMCPGateway(command)
		if err := g.Start(ctx); err != nil {
			return nil, err
		}
		return g, nil
	}
	if url != "" {
		return NewHTTPGateway(url), nil
	}
	return nil, nil
}

func (m *Manager) gatewayFor(tool string) (Gateway, error) {
	switch {
	case strings.HasPrefix(tool, flightToolPrefix):
		if m.flight == nil {
			return nil, fmt.Errorf("tool %s: %w", tool, ErrNotRunning)
		}
		return m.flight, nil
	case strings.HasPrefix(tool, trainToolPrefix):
		if m.train == nil {
			return nil, fmt.Errorf("tool %s: %w", tool, ErrNotRunning)
		}
		return m.train, nil
	}
	return nil, fmt.Errorf("tool %s: no gateway for tool name", tool)
}

// CallTool routes the call to the owning gateway with the default
// timeout for that tool class.
func (m *Manager) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	g, err := m.gatewayFor(name)
	if err != nil {
		return "", err
	}
	return g.CallTool(ctx, name, args, m.timeoutFor(name))
}

func (m *Manager) timeoutFor(tool string) time.Duration {
	switch {
	case tool == ToolStationCodes:
		return m.stationCodeTimeout
	case strings.HasPrefix(tool, flightToolPrefix):
		return m.flightTimeout
	}
	return m.trainTimeout
}

// FlightRunning reports whether the flight provider is usable.
func (m *Manager) FlightRunning() bool {
	return m.flight != nil && m.flight.Running()
}

// TrainRunning reports whether the train provider is usable.
func (m *Manager) TrainRunning() bool {
	return m.train != nil && m.train.Running()
}

// Close shuts down both gateways, returning the first error.
func (m *Manager) Close() error {
	var first error
	if m.flight != nil {
		if err := m.flight.Close(); err != nil {
			first = err
		}
	}
	if m.train != nil {
		if err := m.train.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
