package geo

import (
	"github.com/paulmach/orb/geojson"

	"sathorn/internal/model"
	"sathorn/internal/utils"
)

// FeatureCollection renders properties as GeoJSON point features for the map
func FeatureCollection(properties []model.Property) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range properties {
		f := geojson.NewFeature(Point(p.Lat, p.Lng))
		f.ID = p.ID
		f.Properties["id"] = p.ID
		f.Properties["name"] = p.Name
		f.Properties["type"] = string(p.Type)
		f.Properties["pricePerSqm"] = p.PricePerSqm
		f.Properties["priceLabel"] = utils.FormatPrice(p.PricePerSqm)
		f.Properties["areaLabel"] = utils.FormatArea(p.Area)
		if p.NearestBTS != nil {
			f.Properties["nearestBts"] = *p.NearestBTS
		}
		fc.Append(f)
	}
	return fc
}
