package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGatewayCallTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env toolEnvelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		assert.Equal(t, ToolTrainTickets, env.Tool)
		assert.Equal(t, "2025-01-15", env.Arguments["date"])
		_, _ = w.Write([]byte("G1 08:00 13:28 二等座553"))
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL)
	assert.True(t, g.Running())

	got, err := g.CallTool(context.Background(), ToolTrainTickets, map[string]any{
		"date":        "2025-01-15",
		"fromStation": "VNP",
		"toStation":   "AOH",
	}, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "G1 08:00 13:28 二等座553", got)
}

func TestHTTPGatewayServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL)
	_, err := g.CallTool(context.Background(), ToolSearchFlights, nil, 2*time.Second)
	assert.Error(t, err)
}

func TestHTTPGatewayNoURL(t *testing.T) {
	g := NewHTTPGateway("")
	assert.False(t, g.Running())
	_, err := g.CallTool(context.Background(), ToolSearchFlights, nil, time.Second)
	assert.ErrorIs(t, err, ErrNotRunning)
}
