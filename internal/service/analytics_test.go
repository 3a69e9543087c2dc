package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"sathorn/internal/model"
	"sathorn/internal/repository"
)

func TestAnalytics_Seed(t *testing.T) {
	a := NewAnalyticsService(seededCatalogue(t)).Compute(context.Background())

	assert.Equal(t, 18, a.TotalProperties)
	assert.Equal(t, map[model.PropertyType]int{
		model.PropertyTypeOffice:      6,
		model.PropertyTypeResidential: 6,
		model.PropertyTypeRestaurant:  6,
	}, a.TypeDistribution)
	assert.Equal(t, map[string]int{
		model.PriceBucket200To300K: 3,
		model.PriceBucket300To400K: 9,
		model.PriceBucket400To500K: 5,
		model.PriceBucket500KPlus:  1,
	}, a.PriceDistribution)
	assert.Equal(t, map[model.PropertyType]int{
		model.PropertyTypeOffice:      350000,
		model.PropertyTypeResidential: 332500,
		model.PropertyTypeRestaurant:  430000,
	}, a.AveragePrices)
	assert.Equal(t, 12.1, a.MarketTrends[model.PropertyTypeRestaurant].Growth)
	assert.Equal(t, 5.2, a.MarketTrends[model.PropertyTypeOffice].Growth)
	assert.Equal(t, 3.8, a.MarketTrends[model.PropertyTypeResidential].Growth)
}

func TestAnalytics_EmptyCatalogue(t *testing.T) {
	a := NewAnalyticsService(repository.NewMemoryCatalogue()).Compute(context.Background())

	assert.Zero(t, a.TotalProperties)
	assert.Empty(t, a.TypeDistribution)
	assert.Equal(t, 0, a.AveragePrices[model.PropertyTypeOffice])
	assert.Len(t, a.PriceDistribution, 4)
	assert.Len(t, a.MarketTrends, 3)
}

func TestPriceBucket(t *testing.T) {
	tests := []struct {
		price int
		want  string
	}{
		{150000, model.PriceBucket200To300K},
		{299999, model.PriceBucket200To300K},
		{300000, model.PriceBucket300To400K},
		{399999, model.PriceBucket300To400K},
		{400000, model.PriceBucket400To500K},
		{500000, model.PriceBucket500KPlus},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, priceBucket(tt.price), "price %d", tt.price)
	}
}
