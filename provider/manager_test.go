package provider

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huanchong-99/Go-Home/config"
)

// fakeGateway records calls and replies from a canned table.
type fakeGateway struct {
	mu      sync.Mutex
	calls   []string
	replies map[string]string
	err     error
	down    bool
}

func (f *fakeGateway) CallTool(_ context.Context, name string, _ map[string]any, _ time.Duration) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.replies[name], nil
}

func (f *fakeGateway) Running() bool { return !f.down }
func (f *fakeGateway) Close() error  { return nil }

func testProviderConfig() config.ProviderConfig {
	return config.ProviderConfig{
		FlightTimeout:      time.Second,
		TrainTimeout:       time.Second,
		StationCodeTimeout: time.Second,
	}
}

func TestManagerRoutesByPrefix(t *testing.T) {
	flight := &fakeGateway{replies: map[string]string{ToolSearchFlights: "flights"}}
	train := &fakeGateway{replies: map[string]string{ToolTrainTickets: "trains"}}
	m := NewManager(flight, train, testProviderConfig())

	got, err := m.CallTool(context.Background(), ToolSearchFlights, nil)
	require.NoError(t, err)
	assert.Equal(t, "flights", got)

	got, err = m.CallTool(context.Background(), ToolTrainTickets, nil)
	require.NoError(t, err)
	assert.Equal(t, "trains", got)

	assert.Equal(t, []string{ToolSearchFlights}, flight.calls)
	assert.Equal(t, []string{ToolTrainTickets}, train.calls)
}

func TestManagerUnknownTool(t *testing.T) {
	m := NewManager(&fakeGateway{}, &fakeGateway{}, testProviderConfig())
	_, err := m.CallTool(context.Background(), "hotel_search", nil)
	assert.Error(t, err)
}

func TestManagerMissingGateway(t *testing.T) {
	m := NewManager(nil, &fakeGateway{}, testProviderConfig())
	_, err := m.CallTool(context.Background(), ToolSearchFlights, nil)
	assert.ErrorIs(t, err, ErrNotRunning)

	assert.False(t, m.FlightRunning())
	assert.True(t, m.TrainRunning())
}

func TestManagerTimeoutSelection(t *testing.T) {
	cfg := config.ProviderConfig{
		FlightTimeout:      120 * time.Second,
		TrainTimeout:       60 * time.Second,
		StationCodeTimeout: 30 * time.Second,
	}
	m := NewManager(&fakeGateway{}, &fakeGateway{}, cfg)

	assert.Equal(t, 120*time.Second, m.timeoutFor(ToolSearchFlights))
	assert.Equal(t, 60*time.Second, m.timeoutFor(ToolTrainTickets))
	assert.Equal(t, 30*time.Second, m.timeoutFor(ToolStationCodes))
}

func TestManagerDefaultTimeouts(t *testing.T) {
	m := NewManager(&fakeGateway{}, &fakeGateway{}, config.ProviderConfig{})
	assert.Equal(t, DefaultFlightTimeout, m.timeoutFor(ToolSearchFlights))
	assert.Equal(t, DefaultTrainTimeout, m.timeoutFor(ToolTrainTickets))
	assert.Equal(t, DefaultStationCodeTimeout, m.timeoutFor(ToolStationCodes))
}
