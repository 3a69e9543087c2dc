package model

// PropertyType is the usage class of a catalogued building or unit
type PropertyType string

const (
	PropertyTypeOffice      PropertyType = "office"
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeRestaurant  PropertyType = "restaurant"
)

// PropertyTypes lists every known type in display order
var PropertyTypes = []PropertyType{
	PropertyTypeOffice,
	PropertyTypeResidential,
	PropertyTypeRestaurant,
}

// Property represents a catalogued real-estate listing
type Property struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name" validate:"required"`
	Type        PropertyType `json:"type" validate:"required,oneof=office residential restaurant"`
	Lat         float64      `json:"lat" validate:"gte=-90,lte=90"`
	Lng         float64      `json:"lng" validate:"gte=-180,lte=180"`
	Area        int          `json:"area" validate:"gt=0"`        // square meters
	PricePerSqm int          `json:"pricePerSqm" validate:"gt=0"` // THB
	Description string       `json:"description" validate:"required"`
	Address     string       `json:"address" validate:"required"`
	NearestBTS  *string      `json:"nearestBts"`
	BTSDistance *int         `json:"btsDistance"` // meters
	YearBuilt   *int         `json:"yearBuilt"`
	Floors      *int         `json:"floors"`
}

// Clone returns a deep copy so callers cannot mutate catalogue state
func (p Property) Clone() Property {
	c := p
	if p.NearestBTS != nil {
		v := *p.NearestBTS
		c.NearestBTS = &v
	}
	if p.BTSDistance != nil {
		v := *p.BTSDistance
		c.BTSDistance = &v
	}
	if p.YearBuilt != nil {
		v := *p.YearBuilt
		c.YearBuilt = &v
	}
	if p.Floors != nil {
		v := *p.Floors
		c.Floors = &v
	}
	return c
}

// NearbyProperty is a property annotated with its distance from a reference point
type NearbyProperty struct {
	Property
	Distance      float64 `json:"distance"` // meters
	DistanceLabel string  `json:"distanceLabel"`
}
