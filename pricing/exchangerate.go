package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rustyeddy/fxcalc/market"
)

// DefaultExchangeRateURL is the public exchangerate.host endpoint. It needs
// no API key.
const DefaultExchangeRateURL = "https://api.exchangerate.host"

// ExchangeRateClient fetches spot rates from an exchangerate.host compatible API.
type ExchangeRateClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewExchangeRateClient creates a client. An empty baseURL uses
// DefaultExchangeRateURL; a non-positive timeout uses 10s.
func NewExchangeRateClient(baseURL string, timeout time.Duration) *ExchangeRateClient {
	if baseURL == "" {
		baseURL = DefaultExchangeRateURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ExchangeRateClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Price implements Source.
func (c *ExchangeRateClient) Price(ctx context.Context, pair market.Pair) (Quote, error) {
	meta, err := pair.Meta()
	if err != nil {
		return Quote{}, err
	}

	params := url.Values{}
	params.Set("base", meta.BaseCurrency)
	params.Set("symbols", meta.QuoteCurrency)
	apiURL := fmt.Sprintf("%s/latest?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Quote{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var out latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Quote{}, fmt.Errorf("decode response: %w", err)
	}

	px, ok := out.Rates[meta.QuoteCurrency]
	if !ok || px <= 0 {
		return Quote{}, fmt.Errorf("%w: %s", ErrNoPrice, meta.Symbol)
	}

	return Quote{Pair: pair, Price: px, Time: time.Now().UTC(), Source: "exchangerate"}, nil
}
