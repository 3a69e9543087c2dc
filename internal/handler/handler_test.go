package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sathorn/internal/config"
	"sathorn/internal/logger"
	"sathorn/internal/model"
	"sathorn/internal/repository"
	"sathorn/internal/service"
)

// MockAIClient is a mock implementation of service.AIClient
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

type testServer struct {
	router *gin.Engine
	ai     *MockAIClient
	log    *repository.MemoryQueryLog
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogue := repository.NewMemoryCatalogue()
	require.NoError(t, catalogue.Seed(context.Background(), repository.SeedProperties()))

	queryLog := repository.NewMemoryQueryLog()
	ai := new(MockAIClient)
	lg := logger.Discard()
	searchCfg := config.SearchConfig{NearbyRadiusM: 1000, NearbyLimit: 5, HistoryDefaultLimit: 10, HistoryMaxLimit: 100}

	router := gin.New()
	router.Use(RequestID(), RequestLogger(lg))
	RegisterRoutes(router, Handlers{
		Properties: NewPropertyHandler(service.NewPropertyService(catalogue), searchCfg.NearbyRadiusM, lg),
		Search:     NewSearchHandler(service.NewSearchService(catalogue, queryLog, ai, searchCfg, lg), lg),
		Analytics:  NewAnalyticsHandler(service.NewAnalyticsService(catalogue)),
	})
	router.NoRoute(APINotFound)

	return &testServer{router: router, ai: ai, log: queryLog}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestListProperties(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, rr.Code)

	props := decode[[]model.Property](t, rr)
	assert.Len(t, props, len(repository.SeedProperties()))
	assert.Equal(t, "Empire Tower", props[0].Name)
	assert.NotEmpty(t, rr.Header().Get(requestIDHeader))
}

func TestGetProperty(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		status   int
		propName string
		message  string
	}{
		{name: "seeded id", path: "/api/properties/1", status: http.StatusOK, propName: "Empire Tower"},
		{name: "unknown id", path: "/api/properties/999999", status: http.StatusNotFound, message: "Property not found"},
		{name: "non-numeric id", path: "/api/properties/abc", status: http.StatusBadRequest, message: "Invalid property id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(http.MethodGet, tt.path, "")
			require.Equal(t, tt.status, rr.Code)

			if tt.propName != "" {
				assert.Equal(t, tt.propName, decode[model.Property](t, rr).Name)
				return
			}
			assert.Equal(t, tt.message, decode[model.ErrorResponse](t, rr).Message)
		})
	}
}

func TestFilterProperties(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		names  []string
	}{
		{
			name:   "restaurants from 400K",
			body:   `{"types":["restaurant"],"priceMin":400000}`,
			status: http.StatusOK,
			names:  []string{"The House on Sathorn", "Eat Me Restaurant", "Le Du", "Gaggan Anand"},
		},
		{
			name:   "station set",
			body:   `{"nearBts":["Saphan Taksin"]}`,
			status: http.StatusOK,
			names:  []string{"The River Condo"},
		},
		{name: "unknown type", body: `{"types":["warehouse"]}`, status: http.StatusBadRequest},
		{name: "wrong field type", body: `{"priceMin":"cheap"}`, status: http.StatusBadRequest},
		{name: "malformed JSON", body: `{"types":`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(http.MethodPost, "/api/properties/filter", tt.body)
			require.Equal(t, tt.status, rr.Code, rr.Body.String())

			if tt.status != http.StatusOK {
				resp := decode[model.ErrorResponse](t, rr)
				assert.Equal(t, "Invalid filter parameters", resp.Message)
				assert.NotEmpty(t, resp.Error)
				return
			}

			names := []string{}
			for _, p := range decode[[]model.Property](t, rr) {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestFilterProperties_EmptyBodyReturnsAll(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{"", "{}"} {
		rr := s.do(http.MethodPost, "/api/properties/filter", body)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]model.Property](t, rr), len(repository.SeedProperties()))
	}
}

func TestNearbyProperties(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/api/properties/nearby?lat=13.7240&lng=100.5347&radius=100", "")
	require.Equal(t, http.StatusOK, rr.Code)

	nearby := decode[[]model.NearbyProperty](t, rr)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Empire Tower", nearby[0].Name)
	assert.Equal(t, "Gaggan Anand", nearby[1].Name)
	assert.Equal(t, "45m", nearby[1].DistanceLabel)

	rr = s.do(http.MethodGet, "/api/properties/nearby?lat=13.7240&lng=100.5347", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, decode[[]model.NearbyProperty](t, rr))

	for _, q := range []string{"lng=100.5347", "lat=95&lng=100.5", "lat=13.7&lng=100.5&radius=-5", "lat=abc&lng=100.5"} {
		rr = s.do(http.MethodGet, "/api/properties/nearby?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestPropertiesGeoJSON(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/api/properties.geojson", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/geo+json", rr.Header().Get("Content-Type"))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, len(repository.SeedProperties()))
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	assert.Equal(t, []float64{100.5347, 13.7240}, fc.Features[0].Geometry.Coordinates)
}

func TestSearch(t *testing.T) {
	s := newTestServer(t)
	s.ai.On("Complete", mock.Anything, mock.Anything, "fine dining on Silom").
		Return(`{"response":"Le Du is a Michelin starred option.","relevantPropertyIds":[14]}`, nil).Once()

	rr := s.do(http.MethodPost, "/api/search", `{"query":"fine dining on Silom"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	result := decode[model.SearchResult](t, rr)
	assert.Equal(t, []int64{14}, result.RelevantPropertyIDs)
	assert.NotContains(t, rr.Body.String(), `"summary"`)

	rr = s.do(http.MethodGet, "/api/search/history", "")
	require.Equal(t, http.StatusOK, rr.Code)
	history := decode[[]model.AIQuery](t, rr)
	require.Len(t, history, 1)
	assert.Equal(t, "fine dining on Silom", history[0].Query)
	assert.Equal(t, "[14]", history[0].PropertyIDs)
}

func TestSearch_Rejected(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`{}`, `{"query":""}`, `{"query":"   "}`, `not json`} {
		rr := s.do(http.MethodPost, "/api/search", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "Invalid search query", decode[model.ErrorResponse](t, rr).Message)
	}
	s.ai.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_UpstreamFailure(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{name: "malformed reply", content: "<html>Bad Gateway</html>"},
		{name: "upstream error", err: fmt.Errorf("chat API error 401: Incorrect API key: %w", model.ErrUpstream)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.ai.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(tt.content, tt.err).Once()

			rr := s.do(http.MethodPost, "/api/search", `{"query":"offices"}`)
			require.Equal(t, http.StatusInternalServerError, rr.Code)

			resp := decode[model.ErrorResponse](t, rr)
			assert.Equal(t, "Failed to process search query", resp.Message)
			assert.NotEmpty(t, resp.Error)

			recent, err := s.log.Recent(context.Background(), 10)
			require.NoError(t, err)
			assert.Empty(t, recent)
		})
	}
}

func TestSearchHistory_Limit(t *testing.T) {
	s := newTestServer(t)
	s.ai.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"response":"ok","relevantPropertyIds":[]}`, nil)

	for i := 0; i < 3; i++ {
		rr := s.do(http.MethodPost, "/api/search", fmt.Sprintf(`{"query":"query %d"}`, i))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := s.do(http.MethodGet, "/api/search/history?limit=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	history := decode[[]model.AIQuery](t, rr)
	require.Len(t, history, 2)
	assert.Equal(t, "query 2", history[0].Query)
	assert.Equal(t, "query 1", history[1].Query)

	for _, q := range []string{"0", "-1", "ten"} {
		rr = s.do(http.MethodGet, "/api/search/history?limit="+q, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestAnalytics(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/api/analytics", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.EqualValues(t, 18, body["totalProperties"])
	assert.Contains(t, body, "priceDistribution")
	assert.Contains(t, body, "averagePrices")
	assert.Equal(t, map[string]any{"growth": 12.1}, body["marketTrends"].(map[string]any)["restaurant"])
}

func TestUnknownAPIPath(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "API endpoint not found", decode[model.ErrorResponse](t, rr).Message)
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics", http.NoBody)
	req.Header.Set(requestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))
}

func TestIsAPIPath(t *testing.T) {
	assert.True(t, IsAPIPath("/api"))
	assert.True(t, IsAPIPath("/api/properties"))
	assert.False(t, IsAPIPath("/apiary"))
	assert.False(t, IsAPIPath("/"))
}
