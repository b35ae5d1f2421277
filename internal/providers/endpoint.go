package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/you/skyfinder/internal/config"
	"github.com/you/skyfinder/internal/log"
	"github.com/you/skyfinder/internal/models"
)

// ErrUnexpectedStatus marks a response outside the 2xx range.
var ErrUnexpectedStatus = errors.New("unexpected status from search endpoint")

const maxBodyBytes = 8 << 20

// Endpoint posts criteria as JSON to a single configured search URL.
type Endpoint struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

type Option func(*Endpoint)

// WithHTTPClient swaps the HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Endpoint) {
		if c != nil {
			e.client = c
		}
	}
}

func NewEndpoint(cfg *config.Config, opts ...Option) *Endpoint {
	e := &Endpoint{
		url:     strings.TrimSpace(cfg.APIURL),
		timeout: cfg.RequestTimeout,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *Endpoint) Name() string {
	return "endpoint"
}

func (e *Endpoint) Search(ctx context.Context, c models.Criteria) ([]models.Offer, error) {
	if e.url == "" {
		return nil, errors.New("search endpoint url missing")
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	b, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encode criteria")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "create search request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search request")
	}
	defer resp.Body.Close()

	logger := log.Logger.Named("endpoint").With(
		zap.String("url", e.url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("search endpoint rejected request")
		return nil, errors.Wrapf(ErrUnexpectedStatus, "search: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read search response")
	}

	offers, err := models.ParseOffers(body)
	if err != nil {
		logger.Warn("search endpoint returned malformed body", zap.Error(err))
		return nil, err
	}

	logger.Debug("search completed", zap.Int("offers", len(offers)))
	return offers, nil
}
