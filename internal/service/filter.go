package service

import "sathorn/internal/model"

// ApplyFilter keeps the properties that satisfy every present field of f.
// Input order is preserved and ranges are inclusive at both ends.
func ApplyFilter(properties []model.Property, f model.PropertyFilter) []model.Property {
	var types map[model.PropertyType]struct{}
	if len(f.Types) > 0 {
		types = make(map[model.PropertyType]struct{}, len(f.Types))
		for _, t := range f.Types {
			types[t] = struct{}{}
		}
	}

	var stations map[string]struct{}
	if len(f.NearBTS) > 0 {
		stations = make(map[string]struct{}, len(f.NearBTS))
		for _, s := range f.NearBTS {
			stations[s] = struct{}{}
		}
	}

	result := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if types != nil {
			if _, ok := types[p.Type]; !ok {
				continue
			}
		}
		if f.PriceMin != nil && float64(p.PricePerSqm) < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && float64(p.PricePerSqm) > *f.PriceMax {
			continue
		}
		if f.AreaMin != nil && float64(p.Area) < *f.AreaMin {
			continue
		}
		if f.AreaMax != nil && float64(p.Area) > *f.AreaMax {
			continue
		}
		if stations != nil {
			if p.NearestBTS == nil {
				continue
			}
			if _, ok := stations[*p.NearestBTS]; !ok {
				continue
			}
		}
		result = append(result, p)
	}

	return result
}
