package model

// Price histogram bucket labels, in ascending order
const (
	PriceBucket200To300K = "200-300K"
	PriceBucket300To400K = "300-400K"
	PriceBucket400To500K = "400-500K"
	PriceBucket500KPlus  = "500K+"
)

// Analytics represents aggregate market figures over the whole catalogue
type Analytics struct {
	TotalProperties   int                    `json:"totalProperties"`
	TypeDistribution  map[PropertyType]int   `json:"typeDistribution"`
	PriceDistribution map[string]int         `json:"priceDistribution"`
	AveragePrices     map[PropertyType]int   `json:"averagePrices"`
	MarketTrends      map[PropertyType]Trend `json:"marketTrends"`
}

// Trend is a year-over-year growth percentage
type Trend struct {
	Growth float64 `json:"growth"`
}
