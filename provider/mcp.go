package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huanchong-99/Go-Home/pkg/logger"
)

// MCPGateway talks to a provider subprocess over stdio using the MCP
// protocol. The subprocess is spawned by Start and kept for the life
// of the gateway.
type MCPGateway struct {
	command []string

	mu      sync.Mutex
	client  *client.Client
	running bool
}

// NewMCPGateway prepares a stdio gateway for the given command line.
// The process is not started until Start is called.
func NewMCPGateway(command []string) *MCPGateway {
	return &MCPGateway{command: command}
}

// Start spawns the provider process and performs the MCP initialize
// handshake.
func (g *MCPGateway) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		return nil
	}
	if len(g.command) == 0 {
		return fmt.Errorf("start provider: empty command")
	}

	c, err := client.NewStdioMCPClient(g.command[0], nil, g.command[1:]...)
	if err != nil {
		return fmt.Errorf("spawn provider %q: %w", g.command[0], err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "go-home",
		Version: "1.0.0",
	}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		_ = c.Close()
		return fmt.Errorf("initialize provider %q: %w", g.command[0], err)
	}

	g.client = c
	g.running = true
	logger.Info("provider started", "command", strings.Join(g.command, " "))
	return nil
}

// CallTool invokes a tool on the provider and returns the concatenated
// text content of the reply. A timeout <= 0 means the context governs
// alone.
func (g *MCPGateway) CallTool(ctx context.Context, name string, args map[string]any, timeout time.Duration) (string, error) {
	g.mu.Lock()
	c := g.client
	running := g.running
	g.mu.Unlock()

	if !running || c == nil {
		return "", fmt.Errorf("call %s: %w", name, ErrNotRunning)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := c.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", name, err)
	}

	text := textContent(result)
	if result.IsError {
		// The planner's validator treats error text as a failed
		// segment; surface it as payload, not as a Go error.
		logger.Warn("provider tool returned error payload", "tool", name)
	}
	return text, nil
}

func textContent(result *mcp.CallToolResult) string {
	var b strings.Builder
	for _, content := range result.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

// Running reports whether the provider process is up.
func (g *MCPGateway) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Close terminates the provider process.
func (g *MCPGateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.running {
		return nil
	}
	g.running = false
	err := g.client.Close()
	g.client = nil
	if err != nil {
		return fmt.Errorf("close provider: %w", err)
	}
	return nil
}
