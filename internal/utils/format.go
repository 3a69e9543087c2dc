package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice renders a per-sqm price in baht, e.g. 350000 -> "₿350,000"
func FormatPrice(price int) string {
	return "₿" + groupThousands(price)
}

// FormatArea renders a floor area, e.g. 5000 -> "5,000 sqm"
func FormatArea(area int) string {
	return groupThousands(area) + " sqm"
}

// FormatDistance renders metres under 1km as whole metres and anything
// longer as kilometres with one decimal, e.g. 250 -> "250m", 1234 -> "1.2km"
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(math.Round(meters)))
	}
	return strconv.FormatFloat(meters/1000, 'f', 1, 64) + "km"
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
