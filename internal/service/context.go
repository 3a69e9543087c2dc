package service

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"sathorn/internal/geo"
	"sathorn/internal/model"
)

// propertyContext is the reduced projection of a property sent to the model
type propertyContext struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Type        model.PropertyType `json:"type"`
	Area        int                `json:"area"`
	PricePerSqm int                `json:"pricePerSqm"`
	NearestBTS  *string            `json:"nearestBts"`
	BTSDistance *int               `json:"btsDistance"`
	Lat         float64            `json:"lat"`
	Lng         float64            `json:"lng"`
	Address     string             `json:"address"`
}

// nearbyCandidate is a property close to a coordinate mentioned in the query
type nearbyCandidate struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Distance int    `json:"distanceMeters"`
}

func buildPropertyContext(properties []model.Property) []propertyContext {
	out := make([]propertyContext, 0, len(properties))
	for _, p := range properties {
		out = append(out, propertyContext{
			ID:          p.ID,
			Name:        p.Name,
			Type:        p.Type,
			Area:        p.Area,
			PricePerSqm: p.PricePerSqm,
			NearestBTS:  p.NearestBTS,
			BTSDistance: p.BTSDistance,
			Lat:         p.Lat,
			Lng:         p.Lng,
			Address:     p.Address,
		})
	}
	return out
}

// nearestCandidates ranks properties within radius metres of origin by
// planar distance, closest first, keeping at most limit. Ties keep id order.
func nearestCandidates(origin orb.Point, properties []model.Property, radius float64, limit int) []nearbyCandidate {
	type scored struct {
		p    model.Property
		dist float64
	}

	within := make([]scored, 0, len(properties))
	for _, p := range properties {
		d := geo.Equirectangular(origin, geo.Point(p.Lat, p.Lng))
		if d <= radius {
			within = append(within, scored{p: p, dist: d})
		}
	}

	sort.SliceStable(within, func(i, j int) bool {
		return within[i].dist < within[j].dist
	})

	if limit > 0 && len(within) > limit {
		within = within[:limit]
	}

	out := make([]nearbyCandidate, 0, len(within))
	for _, s := range within {
		out = append(out, nearbyCandidate{
			ID:       s.p.ID,
			Name:     s.p.Name,
			Distance: int(math.Round(s.dist)),
		})
	}
	return out
}

// buildSystemPrompt renders the instruction block with the catalogue embedded.
// origin and nearby are only set when the query carries coordinates.
func buildSystemPrompt(properties []model.Property, origin *orb.Point, nearby []nearbyCandidate) (string, error) {
	catalogue, err := json.Marshal(buildPropertyContext(properties))
	if err != nil {
		return "", fmt.Errorf("failed to encode property context: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a real estate AI assistant for Bangkok's Sathorn and Silom districts. ")
	b.WriteString("Analyze user queries and provide helpful insights about properties.\n\n")
	b.WriteString("Available properties: ")
	b.Write(catalogue)
	b.WriteString("\n\n")

	if origin != nil {
		near, err := json.Marshal(nearby)
		if err != nil {
			return "", fmt.Errorf("failed to encode nearby candidates: %w", err)
		}
		fmt.Fprintf(&b, "The user mentioned the location %.6f, %.6f. ", origin.Lat(), origin.Lon())
		b.WriteString("Properties near that point, closest first: ")
		b.Write(near)
		b.WriteString("\n\n")
	}

	b.WriteString(`When responding, provide:
1. A natural language answer to the user's question
2. Relevant property IDs that match the query, taken only from the list above
3. Summary statistics if applicable

Respond ONLY with a JSON object:
{
  "response": "Natural language response",
  "relevantPropertyIds": [array of property IDs],
  "summary": {
    "count": number,
    "averagePrice": number,
    "priceRange": {"min": number, "max": number}
  }
}

Price format in the response text: Use ₿ symbol followed by formatted number (e.g., ₿350,000)
Distance format in the response text: Include units (e.g., 200m, 2km)
Summary values are plain JSON numbers without symbols or separators`)

	return b.String(), nil
}
