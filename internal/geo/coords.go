package geo

import (
	"regexp"
	"strconv"

	"github.com/paulmach/orb"
)

// coordPattern matches "lat, lng" where both parts carry at least three
// decimal places. Integers ("2 bedrooms", "350,000") never match.
var coordPattern = regexp.MustCompile(`(?:^|[^\d.\-])(-?\d{1,2}\.\d{3,})\s*,\s*(-?\d{1,3}\.\d{3,})(?:$|[^\d])`)

// DetectCoordinates returns the first in-range coordinate pair embedded in text
func DetectCoordinates(text string) (orb.Point, bool) {
	for _, m := range coordPattern.FindAllStringSubmatch(text, -1) {
		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		if !ValidCoordinates(lat, lng) {
			continue
		}
		return Point(lat, lng), true
	}
	return orb.Point{}, false
}
