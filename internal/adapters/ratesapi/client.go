package ratesapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/ports"
	"github.com/SscSPs/currency_converter/internal/core/quota"
	"github.com/SscSPs/currency_converter/internal/platform/metrics"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	endpointCurrencies = "currencies"
	endpointLatest     = "latest"
	endpointHistorical = "historical"

	maxBodyBytes = 2 << 20
)

// QuotaRecorder receives the headers of every successful provider response.
type QuotaRecorder interface {
	RecordFromResponseHeaders(h http.Header) bool
}

// Client talks to a freecurrencyapi.com compatible provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	quota      QuotaRecorder
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

var _ ports.RateProvider = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithQuotaRecorder(q QuotaRecorder) Option {
	return func(c *Client) { c.quota = q }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a client whose every call is bounded by timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = newBreaker(c.logger, c.metrics)
	return c
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Currencies returns metadata for every supported currency.
func (c *Client) Currencies(ctx context.Context) (domain.CurrencyInfoTable, error) {
	data, err := c.getData(ctx, endpointCurrencies, url.Values{})
	if err != nil {
		return nil, err
	}
	var table domain.CurrencyInfoTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, formatError(endpointCurrencies, err)
	}
	return table, nil
}

// Latest returns current rates for base.
func (c *Client) Latest(ctx context.Context, base string) (domain.RateTable, error) {
	params := url.Values{}
	params.Set("base_currency", base)
	data, err := c.getData(ctx, endpointLatest, params)
	if err != nil {
		return nil, err
	}
	var table domain.RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, formatError(endpointLatest, err)
	}
	return table, nil
}

// Historical returns rates for base on date (YYYY-MM-DD).
func (c *Client) Historical(ctx context.Context, date, base string) (domain.RateTable, error) {
	params := url.Values{}
	params.Set("base_currency", base)
	params.Set("date", date)
	data, err := c.getData(ctx, endpointHistorical, params)
	if err != nil {
		return nil, err
	}
	return decodeHistorical(data, date)
}

// decodeHistorical accepts either a flat rate table or one wrapped under a date key.
func decodeHistorical(data json.RawMessage, date string) (domain.RateTable, error) {
	var flat domain.RateTable
	if err := json.Unmarshal(data, &flat); err == nil {
		return flat, nil
	}

	var byDate map[string]domain.RateTable
	if err := json.Unmarshal(data, &byDate); err != nil {
		return nil, formatError(endpointHistorical, err)
	}
	if table, ok := byDate[date]; ok {
		return table, nil
	}
	if len(byDate) == 1 {
		for _, table := range byDate {
			return table, nil
		}
	}
	return nil, fmt.Errorf("%w: %s: %d date keys, none matching %s", apperrors.ErrUpstreamFormat, endpointHistorical, len(byDate), date)
}

func (c *Client) getData(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, formatError(endpoint, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%w: %s: response has no data field", apperrors.ErrUpstreamFormat, endpoint)
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("apikey", c.apiKey)
	endpointURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, endpoint, endpointURL)
	})

	result := "ok"
	if err != nil {
		result = "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
			err = fmt.Errorf("%w: %s: %w", apperrors.ErrUpstreamUnavailable, endpoint, err)
		}
	}
	c.metrics.ObserveUpstream(endpoint, result, time.Since(start))
	return body, err
}

func (c *Client) do(ctx context.Context, endpoint, endpointURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to create request: %w", apperrors.ErrUpstreamUnavailable, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which carries the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: %s: failed to send request: %w", apperrors.ErrUpstreamUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to read body: %w", apperrors.ErrUpstreamUnavailable, endpoint, err)
	}

	if c.quota != nil && c.quota.RecordFromResponseHeaders(resp.Header) {
		if snap, ok := quota.Parse(resp.Header); ok {
			c.metrics.SetQuotaRemaining(snap.Remaining)
		}
	}
	return body, nil
}

// StatusError is a non-2xx provider reply. It unwraps to apperrors.ErrUpstreamUnavailable.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s: provider returned status %d", apperrors.ErrUpstreamUnavailable, e.Endpoint, e.Code)
}

func (e *StatusError) Unwrap() error {
	return apperrors.ErrUpstreamUnavailable
}

// CallerFault reports whether the provider rejected the request itself rather than failing to serve it.
// 408 and 429 are provider-side conditions.
func (e *StatusError) CallerFault() bool {
	return e.Code >= 400 && e.Code < 500 &&
		e.Code != http.StatusRequestTimeout && e.Code != http.StatusTooManyRequests
}

func formatError(endpoint string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrUpstreamFormat, endpoint, err)
}
