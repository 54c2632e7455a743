// Package upstream implements the gateway to the third-party hotel API:
// URL construction for the two feeds, the async job polling loop, and
// normalization of transport and payload-shape failures into the domain
// error taxonomy.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/poll"
)

// Upstream call names used in error context and logs.
const (
	CallPriceJob   = "price job"
	CallStaticInfo = "static info"
)

// Client is the concrete UpstreamGateway over HTTP.
type Client struct {
	httpClient    *http.Client
	priceJobURL   string
	staticInfoURL string
	partnerID     string
	pollCfg       poll.Config
	log           *logger.Logger
}

// Config holds the upstream client settings.
type Config struct {
	// PriceJobURL is the base URL of the asynchronous price-search job.
	PriceJobURL string

	// StaticInfoURL is the base URL of the static-metadata listing.
	StaticInfoURL string

	// PartnerID is the partner/correlation constant attached to the
	// outbound price-job request.
	PartnerID string

	// RequestTimeout bounds each individual HTTP request.
	RequestTimeout time.Duration

	// Poll configures the job polling cadence.
	Poll poll.Config
}

// NewClient creates a new upstream Client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		priceJobURL:   cfg.PriceJobURL,
		staticInfoURL: cfg.StaticInfoURL,
		partnerID:     cfg.PartnerID,
		pollCfg:       cfg.Poll,
		log:           log,
	}
}

// rawPriceJob mirrors PriceJobPayload but keeps the hotels field raw so
// that a missing field and a non-array field can be told apart.
type rawPriceJob struct {
	Completed bool            `json:"completed"`
	Hotels    json.RawMessage `json:"hotels"`
}

// FetchPriceJob implements domain.UpstreamGateway. It polls the job
// endpoint until completed=true, then validates and returns the price
// list. Any transport, HTTP-status or parse error aborts the poll
// immediately; only a completed=false body drives the retry loop.
func (c *Client) FetchPriceJob(ctx context.Context, req *domain.SearchRequest) ([]domain.PriceListEntry, error) {
	jobURL, err := c.buildPriceJobURL(req)
	if err != nil {
		return nil, domain.NewExternalAPIError(CallPriceJob, err)
	}

	attempt := 0
	job, err := poll.Until(ctx, func(ctx context.Context) (rawPriceJob, bool, error) {
		attempt++

		var raw rawPriceJob
		if err := c.getJSON(ctx, CallPriceJob, jobURL, &raw); err != nil {
			return rawPriceJob{}, false, err
		}
		if !raw.Completed {
			c.log.Debug().
				Int("attempt", attempt).
				Msg("price job still pending")
			return rawPriceJob{}, false, nil
		}
		return raw, true, nil
	}, c.pollCfg)
	if err != nil {
		return nil, err
	}

	return decodePriceList(job)
}

// decodePriceList validates the shape of a completed job payload.
// A missing or non-array hotels field violates the upstream contract.
func decodePriceList(job rawPriceJob) ([]domain.PriceListEntry, error) {
	if len(job.Hotels) == 0 || string(job.Hotels) == "null" {
		return nil, domain.NewUpstreamShapeError(CallPriceJob, "completed job has no hotels array")
	}

	var entries []domain.PriceListEntry
	if err := json.Unmarshal(job.Hotels, &entries); err != nil {
		return nil, domain.NewUpstreamShapeError(CallPriceJob, "hotels field is not a price-entry array")
	}
	return entries, nil
}

// FetchStaticInfo implements domain.UpstreamGateway. The static listing is
// a single synchronous GET whose body must be a bare JSON array.
func (c *Client) FetchStaticInfo(ctx context.Context, req *domain.SearchRequest) ([]domain.StaticInfoEntry, error) {
	staticURL, err := c.buildStaticInfoURL(req)
	if err != nil {
		return nil, domain.NewExternalAPIError(CallStaticInfo, err)
	}

	body, err := c.get(ctx, CallStaticInfo, staticURL)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.NewUpstreamShapeError(CallStaticInfo, "payload is not an array")
	}

	var entries []domain.StaticInfoEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, domain.NewExternalAPIError(CallStaticInfo, fmt.Errorf("parse response: %w", err))
	}
	return entries, nil
}

// buildPriceJobURL assembles the templated price-job URL with the search
// parameters and the partner constant.
func (c *Client) buildPriceJobURL(req *domain.SearchRequest) (string, error) {
	u, err := url.Parse(c.priceJobURL)
	if err != nil {
		return "", fmt.Errorf("invalid price job URL: %w", err)
	}

	q := u.Query()
	q.Set("destination", req.DestinationID)
	if req.HotelID != "" {
		q.Set("hotelId", req.HotelID)
	}
	q.Set("checkIn", req.CheckIn)
	q.Set("checkOut", req.CheckOut)
	q.Set("lang", req.Language)
	q.Set("currency", req.Currency)
	q.Set("guests", req.GuestsString())
	q.Set("partnerId", c.partnerID)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// buildStaticInfoURL assembles the static-metadata URL.
func (c *Client) buildStaticInfoURL(req *domain.SearchRequest) (string, error) {
	u, err := url.Parse(c.staticInfoURL)
	if err != nil {
		return "", fmt.Errorf("invalid static info URL: %w", err)
	}

	q := u.Query()
	q.Set("destination", req.DestinationID)
	if req.HotelID != "" {
		q.Set("hotelId", req.HotelID)
	}
	q.Set("lang", req.Language)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// get performs a GET and returns the response body, normalizing transport
// and HTTP-status failures into ExternalAPIError.
func (c *Client) get(ctx context.Context, call, rawURL string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domain.NewExternalAPIError(call, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewExternalAPIError(call, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewExternalAPIError(call, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewExternalAPIError(call, fmt.Errorf("read response: %w", err))
	}
	return body, nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, call, rawURL string, out interface{}) error {
	body, err := c.get(ctx, call, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewExternalAPIError(call, fmt.Errorf("parse response: %w", err))
	}
	return nil
}

// Ensure Client implements the gateway interface at compile time.
var _ domain.UpstreamGateway = (*Client)(nil)
