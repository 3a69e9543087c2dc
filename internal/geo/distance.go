package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// MetersPerDegree is the length of one degree of latitude used by the
// equirectangular approximation.
const MetersPerDegree = 111_320.0

// Point builds an orb point from latitude/longitude in degrees.
// orb stores X as longitude and Y as latitude.
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// Equirectangular returns the planar-approximate distance in meters between
// two points. Longitude deltas are scaled by cos(latitude of the origin).
// Accurate to well under 1% at district scale.
func Equirectangular(from, to orb.Point) float64 {
	dy := (to.Lat() - from.Lat()) * MetersPerDegree
	dx := (to.Lon() - from.Lon()) * MetersPerDegree * math.Cos(from.Lat()*math.Pi/180)
	return math.Sqrt(dx*dx + dy*dy)
}

// Haversine returns the great-circle distance in meters between two points
func Haversine(from, to orb.Point) float64 {
	return orbgeo.DistanceHaversine(from, to)
}

// ValidCoordinates checks that latitude is in [-90,90] and longitude in [-180,180]
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
