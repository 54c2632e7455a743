package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/adapter/http/response"
	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

// mockUseCase is a mock implementation of HotelSearchUseCase for testing.
type mockUseCase struct {
	searchFunc func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)
}

func (m *mockUseCase) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return domain.NewSearchResponse(
		domain.NewReqParams(req, "test-partner"),
		[]domain.MergedHotelResult{},
		domain.SearchMetadata{SearchTimeMs: 100},
	), nil
}

// setupTestHandler creates a test Echo instance and HotelHandler.
func setupTestHandler(uc *mockUseCase) *echo.Echo {
	e := echo.New()
	h := NewHotelHandler(uc)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// validationErrorEnvelope decodes 400 responses with per-field details.
type validationErrorEnvelope struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// upstreamErrorEnvelope decodes 5xx responses with a string detail.
type upstreamErrorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func TestSearchHotels_Success(t *testing.T) {
	name := "Grand Plaza"
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
			return domain.NewSearchResponse(
				domain.NewReqParams(req, "test-partner"),
				[]domain.MergedHotelResult{
					{ID: "abc1", Price: 120.50, Name: &name, Rating: 4.5, Score: 88},
				},
				domain.SearchMetadata{SearchTimeMs: 150},
			), nil
		},
	}

	e := setupTestHandler(mock)

	rec := makeRequest(e, http.MethodPost, "/hotelresults", validSearchBody())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SearchResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Metadata.TotalResults)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "abc1", resp.Data[0].ID)
	assert.Equal(t, "2", resp.ReqParams.Guests)
}

func TestSearchHotels_ConvertsRequest(t *testing.T) {
	var captured *domain.SearchRequest

	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
			captured = req
			return domain.NewSearchResponse(
				domain.NewReqParams(req, "test-partner"),
				nil,
				domain.SearchMetadata{},
			), nil
		},
	}

	e := setupTestHandler(mock)

	body := validSearchBody()
	body.HotelID = "abc7"
	body.Guests = json.RawMessage(`"3"`)
	body.Rooms = json.RawMessage(`2`)
	body.SortExist = boolPtr(true)
	body.Sort = &SortDTO{Field: "price", Reverse: flexBoolPtr(true)}
	body.FilterExist = boolPtr(true)
	body.Filters = &FilterDTO{MinPrice: floatPtr(100), MaxPrice: floatPtr(200)}

	rec := makeRequest(e, http.MethodPost, "/hotelresults", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "WD0M", captured.DestinationID)
	assert.Equal(t, "abc7", captured.HotelID)
	assert.Equal(t, 3, captured.GuestsPerRoom)
	assert.Equal(t, 2, captured.Rooms)
	require.NotNil(t, captured.Sort)
	assert.Equal(t, domain.SortByPrice, captured.Sort.Field)
	assert.True(t, captured.Sort.Reverse)
	require.NotNil(t, captured.Filter)
	assert.Equal(t, floatPtr(100), captured.Filter.MinPrice)
	assert.Equal(t, floatPtr(200), captured.Filter.MaxPrice)
}

func TestSearchHotels_FlagsOffIgnoreBodies(t *testing.T) {
	var captured *domain.SearchRequest

	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
			captured = req
			return domain.NewSearchResponse(
				domain.NewReqParams(req, "test-partner"),
				nil,
				domain.SearchMetadata{},
			), nil
		},
	}

	e := setupTestHandler(mock)

	// sort and filters present but their flags are false
	body := validSearchBody()
	body.Sort = &SortDTO{Field: "price"}
	body.Filters = &FilterDTO{MinPrice: floatPtr(100)}

	rec := makeRequest(e, http.MethodPost, "/hotelresults", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Nil(t, captured.Sort)
	assert.Nil(t, captured.Filter)
}

func TestSearchHotels_InvalidJSON(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/hotelresults",
		strings.NewReader(`{invalid json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp validationErrorEnvelope
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidRequest, errResp.Error)
}

func TestSearchHotels_WrongTypedField(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	// destination_id sent as a number instead of a string
	req := httptest.NewRequest(http.MethodPost, "/hotelresults",
		strings.NewReader(`{"destination_id": 123, "check_in": "2025-06-10", "check_out": "2025-06-12"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp validationErrorEnvelope
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeValidationError, errResp.Error)
	assert.Contains(t, errResp.Details, "destination_id")
}

func TestSearchHotels_ValidationFailure(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	tests := []struct {
		name          string
		mutate        func(r *SearchHotelsRequest)
		expectedField string
	}{
		{
			name:          "missing destination",
			mutate:        func(r *SearchHotelsRequest) { r.DestinationID = "" },
			expectedField: "destination_id",
		},
		{
			name:          "bad check_in",
			mutate:        func(r *SearchHotelsRequest) { r.CheckIn = "junk" },
			expectedField: "check_in",
		},
		{
			name:          "non-numeric guests",
			mutate:        func(r *SearchHotelsRequest) { r.Guests = json.RawMessage(`"two"`) },
			expectedField: "guests",
		},
		{
			name:          "missing sort_exist",
			mutate:        func(r *SearchHotelsRequest) { r.SortExist = nil },
			expectedField: "sort_exist",
		},
		{
			name: "sort without reverse",
			mutate: func(r *SearchHotelsRequest) {
				r.SortExist = boolPtr(true)
				r.Sort = &SortDTO{Field: "price"}
			},
			expectedField: "sort.reverse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validSearchBody()
			tt.mutate(&body)

			rec := makeRequest(e, http.MethodPost, "/hotelresults", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp validationErrorEnvelope
			err := json.Unmarshal(rec.Body.Bytes(), &errResp)
			require.NoError(t, err)
			assert.Equal(t, response.CodeValidationError, errResp.Error)
			assert.Contains(t, errResp.Details, tt.expectedField)
		})
	}
}

func TestSearchHotels_DomainValidationError(t *testing.T) {
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
			return nil, domain.ErrInvalidRequest
		},
	}

	e := setupTestHandler(mock)

	rec := makeRequest(e, http.MethodPost, "/hotelresults", validSearchBody())

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp validationErrorEnvelope
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeValidationError, errResp.Error)
}

func TestSearchHotels_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLabel string
	}{
		{
			name:      "external api failure",
			err:       domain.NewExternalAPIError("price job", assert.AnError),
			wantLabel: response.CodeExternalAPIError,
		},
		{
			name:      "upstream shape failure",
			err:       domain.NewUpstreamShapeError("static info", "payload is not an array"),
			wantLabel: response.CodeUpstreamShape,
		},
		{
			name:      "poll budget exhausted",
			err:       domain.NewMaxAttemptsError(10),
			wantLabel: response.CodeMaxAttempts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockUseCase{
				searchFunc: func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
					return nil, tt.err
				},
			}

			e := setupTestHandler(mock)

			rec := makeRequest(e, http.MethodPost, "/hotelresults", validSearchBody())

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var errResp upstreamErrorEnvelope
			err := json.Unmarshal(rec.Body.Bytes(), &errResp)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, errResp.Error)
			assert.Equal(t, tt.err.Error(), errResp.Details)
		})
	}
}

func TestSearchHotels_Timeout(t *testing.T) {
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
			return nil, context.DeadlineExceeded
		},
	}

	e := setupTestHandler(mock)

	rec := makeRequest(e, http.MethodPost, "/hotelresults", validSearchBody())

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var errResp upstreamErrorEnvelope
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeTimeout, errResp.Error)
}

func TestSearchHotels_UnknownError(t *testing.T) {
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
			return nil, assert.AnError
		},
	}

	e := setupTestHandler(mock)

	rec := makeRequest(e, http.MethodPost, "/hotelresults", validSearchBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp upstreamErrorEnvelope
	err := json.Unmarshal(rec.Body.Bytes(), &errResp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeInternalError, errResp.Error)
}

func TestSearchHotels_EmptyResults(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/hotelresults", validSearchBody())

	// Empty results should still return 200 with data: []
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestHealth_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.HealthResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := NewHotelHandler(&mockUseCase{})

	RegisterRoutes(e, h)

	routes := e.Routes()

	expectedPaths := map[string]string{
		"/health":       http.MethodGet,
		"/hotelresults": http.MethodPost,
	}

	for path, method := range expectedPaths {
		found := false
		for _, r := range routes {
			if r.Path == path && r.Method == method {
				found = true
				break
			}
		}
		assert.True(t, found, "expected route %s %s not found", method, path)
	}
}

func TestRegisterRoutesWithMiddleware(t *testing.T) {
	e := echo.New()
	h := NewHotelHandler(&mockUseCase{})

	var hits int
	counter := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hits++
			return next(c)
		}
	}

	RegisterRoutesWithMiddleware(e, h, counter)

	// Search goes through the middleware chain
	rec := makeRequest(e, http.MethodPost, "/hotelresults", validSearchBody())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits)

	// Health stays outside the chain
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	e.ServeHTTP(healthRec, req)
	assert.Equal(t, http.StatusOK, healthRec.Code)
	assert.Equal(t, 1, hits)
}

func flexBoolPtr(b bool) *FlexBool {
	fb := FlexBool(b)
	return &fb
}
