package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/server"
	"github.com/simonvc/tripbudget/internal/tools"
)

const DefaultTimeout = 30 * time.Second

// Client talks to a tripbudget server. It implements tools.Invoker, so the
// CLI and TUI can run against a server exactly as they run locally.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ tools.Invoker = (*Client)(nil)

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/api/v1/health", nil)
}

func (c *Client) ListExpenses(ctx context.Context) ([]ledger.Expense, error) {
	var result []ledger.Expense
	if err := c.get(ctx, "/api/v1/expenses", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Definitions(ctx context.Context) ([]openai.Tool, error) {
	var result []openai.Tool
	if err := c.get(ctx, "/api/v1/tools", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Call invokes a tool by name. A tool failure is reported in the returned
// Invocation; err is set only when no result could be obtained.
func (c *Client) Call(ctx context.Context, name string, args json.RawMessage) (tools.Invocation, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/tools/"+url.PathEscape(name), bytes.NewReader(args))
	if err != nil {
		return tools.Invocation{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := tools.CallIDFrom(ctx); id != "" {
		req.Header.Set(server.CallIDHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tools.Invocation{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return tools.Invocation{}, fmt.Errorf("read response: %w", err)
	}

	var wire struct {
		CallID string          `json:"call_id"`
		Tool   string          `json:"tool"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(bodyBytes, &wire); err != nil || len(wire.Result) == 0 {
		return tools.Invocation{}, apiFailure(resp.StatusCode, bodyBytes)
	}

	res, err := tools.DecodeResult(wire.Tool, wire.Result)
	if err != nil {
		return tools.Invocation{}, fmt.Errorf("decode response: %w", err)
	}
	return tools.Invocation{CallID: wire.CallID, Tool: wire.Tool, Result: res}, nil
}

func (c *Client) FoodCost(ctx context.Context, days, costPerDay int64) tools.Result {
	return c.invoke(ctx, tools.ToolFoodCost, map[string]any{"days": days, "cost_per_day": costPerDay})
}

func (c *Client) HotelCost(ctx context.Context, nights, pricePerNight int64) tools.Result {
	return c.invoke(ctx, tools.ToolHotelCost, map[string]any{"nights": nights, "price_per_night": pricePerNight})
}

func (c *Client) TransportCost(ctx context.Context, distanceKM int64, transportType string) tools.Result {
	return c.invoke(ctx, tools.ToolTransportCost, map[string]any{"distance_km": distanceKM, "transport_type": transportType})
}

func (c *Client) TotalBudget(ctx context.Context) tools.Result {
	return c.invoke(ctx, tools.ToolTotalBudget, nil)
}

func (c *Client) ClearAllExpenses(ctx context.Context) tools.Result {
	return c.invoke(ctx, tools.ToolClearAllExpenses, nil)
}

func (c *Client) GetExpenseSummary(ctx context.Context) tools.Result {
	return c.invoke(ctx, tools.ToolGetExpenseSummary, nil)
}

func (c *Client) invoke(ctx context.Context, name string, args map[string]any) tools.Result {
	var body json.RawMessage
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return internalError(fmt.Errorf("marshal arguments: %w", err))
		}
		body = data
	}

	inv, err := c.Call(ctx, name, body)
	if err != nil {
		return internalError(err)
	}
	return inv.Result
}

func internalError(err error) *tools.ErrorResult {
	return &tools.ErrorResult{Status: tools.StatusError, Kind: tools.KindInternal, Message: err.Error()}
}

type apiError struct {
	Error string `json:"error"`
}

func apiFailure(status int, body []byte) error {
	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("server error (%d): %s", status, apiErr.Error)
	}
	return fmt.Errorf("server error (%d): %s", status, string(body))
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, result)
}

func (c *Client) doRequest(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return apiFailure(resp.StatusCode, bodyBytes)
	}

	if result != nil {
		if err := json.Unmarshal(bodyBytes, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
