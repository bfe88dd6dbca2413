package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// HTTPGateway reaches a provider exposed over plain HTTP instead of a
// stdio subprocess. Tool calls POST a JSON envelope to the endpoint
// and read the body back as the raw payload.
type HTTPGateway struct {
	url    string
	client *retryablehttp.Client
}

type toolEnvelope struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

func httpRetryPolicy() func(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				return false, ctx.Err()
			}
		}

		if resp == nil {
			return true, fmt.Errorf("response is nil")
		}

		if resp.StatusCode != http.StatusOK {
			return true, fmt.Errorf("wrong status code: %d", resp.StatusCode)
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
}

// NewHTTPGateway creates a gateway for the given endpoint URL.
func NewHTTPGateway(url string) *HTTPGateway {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = time.Second
	client.CheckRetry = httpRetryPolicy()
	client.Logger = nil

	return &HTTPGateway{url: url, client: client}
}

// CallTool posts the tool envelope and returns the response body.
func (g *HTTPGateway) CallTool(ctx context.Context, name string, args map[string]any, timeout time.Duration) (string, error) {
	if g.url == "" {
		return "", fmt.Errorf("call %s: %w", name, ErrNotRunning)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := json.Marshal(toolEnvelope{Tool: name, Arguments: args})
	if err != nil {
		return "", fmt.Errorf("encode %s request: %w", name, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", name, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", name, err)
	}
	return string(payload), nil
}

// Running is true whenever the gateway has an endpoint; HTTP holds no
// persistent connection to probe.
func (g *HTTPGateway) Running() bool {
	return g.url != ""
}

// Close is a no-op for HTTP.
func (g *HTTPGateway) Close() error {
	return nil
}
