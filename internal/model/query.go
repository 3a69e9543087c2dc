package model

import "time"

// PropertyFilter represents structured filter constraints.
// Nil pointers and empty slices impose no constraint.
type PropertyFilter struct {
	Types    []PropertyType `json:"types,omitempty" binding:"omitempty,dive,oneof=office residential restaurant"`
	PriceMin *float64       `json:"priceMin,omitempty"`
	PriceMax *float64       `json:"priceMax,omitempty"`
	AreaMin  *float64       `json:"areaMin,omitempty"`
	AreaMax  *float64       `json:"areaMax,omitempty"`
	NearBTS  []string       `json:"nearBts,omitempty"`
}

// SearchRequest represents a free-text AI search request
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchResult is the structured answer returned by the AI relay
type SearchResult struct {
	Response            string         `json:"response"`
	RelevantPropertyIDs []int64        `json:"relevantPropertyIds"`
	Summary             *SearchSummary `json:"summary,omitempty"`
}

// SearchSummary holds optional aggregate figures about the relevant properties
type SearchSummary struct {
	Count        int        `json:"count"`
	AveragePrice float64    `json:"averagePrice"`
	PriceRange   PriceRange `json:"priceRange"`
}

// PriceRange is an inclusive min/max pair in THB per square meter
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AIQuery is an append-only record of a successful AI search
type AIQuery struct {
	ID          int64     `json:"id" db:"id"`
	Query       string    `json:"query" db:"query"`
	Response    string    `json:"response" db:"response"`
	PropertyIDs string    `json:"propertyIds" db:"property_ids"` // JSON array of property IDs
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// NearbyRequest represents the query string of a proximity lookup
type NearbyRequest struct {
	Lat    *float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Lng    *float64 `form:"lng" binding:"required,gte=-180,lte=180"`
	Radius float64  `form:"radius" binding:"omitempty,gt=0,lte=20000"`
}

// ErrorResponse is the JSON body of every non-2xx API response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
