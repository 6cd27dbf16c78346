package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
)

// HTTPGateway talks to the storefront API over plain JSON endpoints.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	if err := g.getJSON(ctx, "/suppliers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) Arrivals(ctx context.Context) ([]model.Arrival, error) {
	var out []model.Arrival
	if err := g.getJSON(ctx, "/arrivals", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) Receipts(ctx context.Context) ([]model.Receipt, error) {
	var out []model.Receipt
	if err := g.getJSON(ctx, "/receipts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog: GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return nil
}
