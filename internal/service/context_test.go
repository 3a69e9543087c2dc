package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sathorn/internal/geo"
	"sathorn/internal/model"
)

func TestNearestCandidates(t *testing.T) {
	props := []model.Property{
		{ID: 1, Name: "far", Lat: 13.7400, Lng: 100.5347},
		{ID: 2, Name: "near", Lat: 13.7241, Lng: 100.5347},
		{ID: 3, Name: "origin", Lat: 13.7240, Lng: 100.5347},
		{ID: 4, Name: "mid", Lat: 13.7260, Lng: 100.5347},
		{ID: 5, Name: "also mid", Lat: 13.7215, Lng: 100.5347},
	}
	origin := geo.Point(13.7240, 100.5347)

	tests := []struct {
		name   string
		radius float64
		limit  int
		want   []int64
	}{
		{name: "radius excludes far", radius: 1000, limit: 10, want: []int64{3, 2, 4, 5}},
		{name: "limit keeps closest", radius: 1000, limit: 2, want: []int64{3, 2}},
		{name: "tiny radius", radius: 1, limit: 10, want: []int64{3}},
		{name: "zero limit is unlimited", radius: 5000, limit: 0, want: []int64{3, 2, 4, 5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nearestCandidates(origin, props, tt.radius, tt.limit)
			gotIDs := make([]int64, 0, len(got))
			for _, c := range got {
				gotIDs = append(gotIDs, c.ID)
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestBuildPropertyContext(t *testing.T) {
	bts := "Sala Daeng"
	dist := 250
	year := 2014
	props := []model.Property{{
		ID: 14, Name: "Le Du", Type: model.PropertyTypeRestaurant,
		Lat: 13.7203, Lng: 100.5333, Area: 160, PricePerSqm: 475000,
		Description: "long text", Address: "399/3 Silom Road",
		NearestBTS: &bts, BTSDistance: &dist, YearBuilt: &year,
	}}

	raw, err := json.Marshal(buildPropertyContext(props))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "Le Du", decoded[0]["name"])
	assert.Equal(t, "Sala Daeng", decoded[0]["nearestBts"])
	assert.Equal(t, "399/3 Silom Road", decoded[0]["address"])
	assert.NotContains(t, decoded[0], "description")
	assert.NotContains(t, decoded[0], "yearBuilt")
}

func TestBuildSystemPrompt(t *testing.T) {
	props := []model.Property{{ID: 1, Name: "Empire Tower", Type: model.PropertyTypeOffice}}

	plain, err := buildSystemPrompt(props, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, plain, `"name":"Empire Tower"`)
	assert.Contains(t, plain, `"relevantPropertyIds"`)
	assert.NotContains(t, plain, "The user mentioned the location")

	origin := geo.Point(13.7240, 100.5347)
	withCoords, err := buildSystemPrompt(props, &origin, []nearbyCandidate{{ID: 1, Name: "Empire Tower", Distance: 0}})
	require.NoError(t, err)
	assert.Contains(t, withCoords, "The user mentioned the location 13.724000, 100.534700")
	assert.Contains(t, withCoords, `[{"id":1,"name":"Empire Tower","distanceMeters":0}]`)
}
