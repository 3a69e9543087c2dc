package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sathorn/internal/config"
	"sathorn/internal/model"
	"sathorn/internal/repository"
)

// MockAIClient is a mock implementation of the AIClient interface
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

// MockQueryLog is a mock implementation of the QueryLog interface
type MockQueryLog struct {
	mock.Mock
}

func (m *MockQueryLog) Append(ctx context.Context, q model.AIQuery) (model.AIQuery, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(model.AIQuery), args.Error(1)
}

func (m *MockQueryLog) Recent(ctx context.Context, limit int) ([]model.AIQuery, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]model.AIQuery), args.Error(1)
}

func seededCatalogue(t *testing.T) *repository.MemoryCatalogue {
	t.Helper()
	c := repository.NewMemoryCatalogue()
	require.NoError(t, c.Seed(context.Background(), repository.SeedProperties()))
	return c
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{
		NearbyRadiusM:       1000,
		NearbyLimit:         5,
		HistoryDefaultLimit: 10,
		HistoryMaxLimit:     100,
	}
}

func ids(properties []model.Property) []int64 {
	out := make([]int64, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.ID)
	}
	return out
}

func f64(v float64) *float64 { return &v }
