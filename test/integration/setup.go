// Package integration provides helpers and integration tests for the hotel
// search system. Integration tests verify that components work together
// correctly, including HTTP handlers, the use case pipeline, the cache and
// the upstream gateway.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/hotel-search/hotel-search-aggregation-service/internal/adapter/http"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/cache"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/infrastructure/timeutil"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/usecase"
)

// TestPartnerID is the partner identifier wired through the test stack.
const TestPartnerID = "test-partner"

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.HotelHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.HotelSearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHotelHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search body to the hotel results endpoint.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/hotelresults",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
// Guests and Rooms are untyped so tests can send numbers or numeric strings.
type SearchRequestBody struct {
	DestinationID string                 `json:"destination_id"`
	HotelID       string                 `json:"hotel_id,omitempty"`
	CheckIn       string                 `json:"check_in"`
	CheckOut      string                 `json:"check_out"`
	Lang          string                 `json:"lang"`
	Currency      string                 `json:"currency"`
	Guests        interface{}            `json:"guests"`
	Rooms         interface{}            `json:"rooms"`
	SortExist     bool                   `json:"sort_exist"`
	Sort          map[string]interface{} `json:"sort,omitempty"`
	FilterExist   bool                   `json:"filter_exist"`
	Filters       map[string]interface{} `json:"filters,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
// Uses dates 30 days in the future to satisfy the advance booking window.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		DestinationID: "WD0M",
		CheckIn:       FutureDate(30),
		CheckOut:      FutureDate(32),
		Lang:          "en_US",
		Currency:      "SGD",
		Guests:        2,
		Rooms:         1,
	}
}

// CreateUseCase creates a use case over the given gateway with a fresh
// cache. The returned cleanup function stops the cache reaper and must be
// called when the test finishes.
func CreateUseCase(gateway domain.UpstreamGateway) (usecase.HotelSearchUseCase, func()) {
	resultCache := cache.New(cache.DefaultTTL, timeutil.NewRealClock())
	uc := usecase.NewHotelSearchUseCase(gateway, resultCache, usecase.Config{
		PartnerID: TestPartnerID,
	})
	return uc, resultCache.Close
}

// FutureDate returns a date string the given number of days ahead in
// YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}
