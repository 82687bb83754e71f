package collector

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

	"CryptoScope/internal/model"
)

// DefaultKrakenURL is the public Kraken REST endpoint.
const DefaultKrakenURL = "https://api.kraken.com"

// KrakenFetcher implements Fetcher using the Kraken public REST API.
type KrakenFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewKrakenFetcher creates a new fetcher with optional proxy support.
func NewKrakenFetcher(baseURL, proxyURL string, timeout time.Duration) *KrakenFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultKrakenURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &KrakenFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *KrakenFetcher) Name() string { return "kraken" }

// krakenResponse is the envelope of every Kraken public endpoint. Result holds
// one key per requested pair plus "last".
type krakenResponse struct {
	Error  []string                   `json:"error"`
	Result map[string]json.RawMessage `json:"result"`
}

func (f *KrakenFetcher) FetchOHLC(ctx context.Context, pair string, interval int) ([][]any, error) {
	endpoint := fmt.Sprintf("%s/0/public/OHLC?pair=%s&interval=%d", f.BaseURL, url.QueryEscape(pair), interval)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("kraken %s: %v: %w", pair, err, model.ErrFetchFailed)
	}
	req.Header.Set("User-Agent", "CryptoScope/1.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kraken %s: %v: %w", pair, err, model.ErrFetchFailed)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("kraken %s read body: %v: %w", pair, err, model.ErrFetchFailed)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kraken %s: status %d, body: %s: %w", pair, resp.StatusCode, truncate(body, 200), model.ErrFetchFailed)
	}

	var envelope krakenResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("kraken %s decode: %v: %w", pair, err, model.ErrFetchFailed)
	}
	if len(envelope.Error) > 0 {
		return nil, fmt.Errorf("kraken %s api error: %s: %w", pair, strings.Join(envelope.Error, "; "), model.ErrFetchFailed)
	}
	rawRows, ok := envelope.Result[pair]
	if !ok {
		return nil, fmt.Errorf("kraken %s: pair missing from result: %w", pair, model.ErrFetchFailed)
	}

	// Prices arrive as strings and timestamps as integers; UseNumber keeps
	// integers exact for ingestion.
	var rows [][]any
	dec := json.NewDecoder(bytes.NewReader(rawRows))
	dec.UseNumber()
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("kraken %s decode rows: %v: %w", pair, err, model.ErrFetchFailed)
	}
	return rows, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
