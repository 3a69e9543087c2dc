package service

import (
	"context"
	"sort"

	"github.com/paulmach/orb/geojson"

	"sathorn/internal/geo"
	"sathorn/internal/model"
	"sathorn/internal/repository"
	"sathorn/internal/utils"
)

// PropertyService exposes catalogue reads to the HTTP layer
type PropertyService struct {
	catalogue repository.Catalogue
}

// NewPropertyService creates a new property service
func NewPropertyService(catalogue repository.Catalogue) *PropertyService {
	return &PropertyService{catalogue: catalogue}
}

// GetAll returns every property in insertion order
func (s *PropertyService) GetAll(ctx context.Context) []model.Property {
	return s.catalogue.GetAll(ctx)
}

// GetByID returns a single property or model.ErrNotFound
func (s *PropertyService) GetByID(ctx context.Context, id int64) (model.Property, error) {
	return s.catalogue.GetByID(ctx, id)
}

// Filter applies f to the whole catalogue
func (s *PropertyService) Filter(ctx context.Context, f model.PropertyFilter) []model.Property {
	return ApplyFilter(s.catalogue.GetAll(ctx), f)
}

// Nearby returns properties within radius metres of (lat, lng) by great-circle
// distance, closest first
func (s *PropertyService) Nearby(ctx context.Context, lat, lng, radius float64) []model.NearbyProperty {
	origin := geo.Point(lat, lng)

	result := []model.NearbyProperty{}
	for _, p := range s.catalogue.GetAll(ctx) {
		d := geo.Haversine(origin, geo.Point(p.Lat, p.Lng))
		if d > radius {
			continue
		}
		result = append(result, model.NearbyProperty{
			Property:      p,
			Distance:      d,
			DistanceLabel: utils.FormatDistance(d),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})
	return result
}

// GeoJSON renders the catalogue as a FeatureCollection for the map
func (s *PropertyService) GeoJSON(ctx context.Context) *geojson.FeatureCollection {
	return geo.FeatureCollection(s.catalogue.GetAll(ctx))
}
