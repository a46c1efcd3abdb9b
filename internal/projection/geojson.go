package projection

import (
	"github.com/shenikar/incident_reporting/internal/models"
)

const (
	GeoJSONContentType = "application/geo+json"
	GeoJSONFilename    = "incidents.geojson"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   Point             `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type FeatureProperties struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Severity  string `json:"severity"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToFeatureCollection строит GeoJSON с точками в порядке [lon, lat]
func ToFeatureCollection(incidents []*models.Incident) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, len(incidents))}
	for i, inc := range incidents {
		fc.Features[i] = Feature{
			Type: "Feature",
			Geometry: Point{
				Type:        "Point",
				Coordinates: [2]float64{inc.Longitude, inc.Latitude},
			},
			Properties: FeatureProperties{
				ID:        inc.ID.String(),
				Type:      inc.Type,
				Severity:  string(inc.Severity),
				Status:    string(inc.Status),
				CreatedAt: FormatTimestamp(inc.CreatedAt),
			},
		}
	}
	return fc
}
