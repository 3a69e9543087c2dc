package service

import (
	"context"
	"math"

	"sathorn/internal/model"
	"sathorn/internal/repository"
)

// marketTrends are fixed year-over-year growth figures shown on the dashboard
var marketTrends = map[model.PropertyType]model.Trend{
	model.PropertyTypeOffice:      {Growth: 5.2},
	model.PropertyTypeResidential: {Growth: 3.8},
	model.PropertyTypeRestaurant:  {Growth: 12.1},
}

// AnalyticsService aggregates market figures over the catalogue
type AnalyticsService struct {
	catalogue repository.Catalogue
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(catalogue repository.Catalogue) *AnalyticsService {
	return &AnalyticsService{catalogue: catalogue}
}

// Compute returns counts, the price histogram and rounded average prices
func (s *AnalyticsService) Compute(ctx context.Context) model.Analytics {
	properties := s.catalogue.GetAll(ctx)

	a := model.Analytics{
		TotalProperties:  len(properties),
		TypeDistribution: make(map[model.PropertyType]int, len(model.PropertyTypes)),
		PriceDistribution: map[string]int{
			model.PriceBucket200To300K: 0,
			model.PriceBucket300To400K: 0,
			model.PriceBucket400To500K: 0,
			model.PriceBucket500KPlus:  0,
		},
		AveragePrices: make(map[model.PropertyType]int, len(model.PropertyTypes)),
		MarketTrends:  make(map[model.PropertyType]model.Trend, len(marketTrends)),
	}

	sums := make(map[model.PropertyType]int)
	for _, p := range properties {
		a.TypeDistribution[p.Type]++
		sums[p.Type] += p.PricePerSqm
		a.PriceDistribution[priceBucket(p.PricePerSqm)]++
	}

	for _, t := range model.PropertyTypes {
		n := a.TypeDistribution[t]
		if n == 0 {
			a.AveragePrices[t] = 0
			continue
		}
		a.AveragePrices[t] = int(math.Round(float64(sums[t]) / float64(n)))
	}

	for t, trend := range marketTrends {
		a.MarketTrends[t] = trend
	}

	return a
}

// priceBucket places prices below 300K in the lowest bucket, whatever their value
func priceBucket(price int) string {
	switch {
	case price < 300000:
		return model.PriceBucket200To300K
	case price < 400000:
		return model.PriceBucket300To400K
	case price < 500000:
		return model.PriceBucket400To500K
	default:
		return model.PriceBucket500KPlus
	}
}
