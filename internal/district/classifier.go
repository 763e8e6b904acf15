package district

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/wawbus/fleet-analytics-go/internal/models"
	"github.com/wawbus/fleet-analytics-go/internal/spatial"
)

// District is one named boundary with its multipolygon geometry
type District struct {
	Name     string
	Geometry spatial.MultiPolygon
}

// Classifier resolves points to district names. Boundaries are loaded once
// and held read-only, so Classify is safe for concurrent use.
type Classifier struct {
	districts []District
}

type geoJSONFile struct {
	Features []struct {
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
		Geometry struct {
			Type        string          `json:"type"`
			Coordinates json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Load reads the district boundary GeoJSON. A missing or malformed boundary
// file is an error for the caller to treat as fatal: every downstream
// aggregate depends on district attribution, there is no degraded mode.
func Load(path string) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read district boundaries: %w", err)
	}

	var file geoJSONFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse district boundaries: %w", err)
	}
	if len(file.Features) == 0 {
		return nil, fmt.Errorf("district boundary file %s contains no features", path)
	}

	var districts []District

	// The first feature is the enclosing city outline, not a district.
	for _, feature := range file.Features[1:] {
		mp, err := parseGeometry(feature.Geometry.Type, feature.Geometry.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("failed to parse geometry for district %q: %w", feature.Properties.Name, err)
		}
		districts = append(districts, District{
			Name:     feature.Properties.Name,
			Geometry: mp,
		})
	}

	log.Printf("[DistrictClassifier] Loaded %d district boundaries from %s", len(districts), path)
	return &Classifier{districts: districts}, nil
}

// parseGeometry decodes Polygon or MultiPolygon coordinate arrays.
// GeoJSON positions are [lon, lat].
func parseGeometry(geomType string, coordinates json.RawMessage) (spatial.MultiPolygon, error) {
	switch geomType {
	case "Polygon":
		var rings [][][2]float64
		if err := json.Unmarshal(coordinates, &rings); err != nil {
			return nil, err
		}
		return spatial.MultiPolygon{convertPolygon(rings)}, nil
	case "MultiPolygon":
		var polygons [][][][2]float64
		if err := json.Unmarshal(coordinates, &polygons); err != nil {
			return nil, err
		}
		mp := make(spatial.MultiPolygon, 0, len(polygons))
		for _, rings := range polygons {
			mp = append(mp, convertPolygon(rings))
		}
		return mp, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", geomType)
	}
}

func convertPolygon(rings [][][2]float64) spatial.Polygon {
	polygon := make(spatial.Polygon, 0, len(rings))
	for _, ring := range rings {
		converted := make(spatial.Ring, 0, len(ring))
		for _, position := range ring {
			converted = append(converted, spatial.Point{Lat: position[1], Lon: position[0]})
		}
		polygon = append(polygon, converted)
	}
	return polygon
}

// Classify returns the name of the first district, in boundary-list order,
// whose geometry contains the point, or the empty string if none does.
func (c *Classifier) Classify(point models.Point) string {
	location := spatial.Point{Lat: point.Lat, Lon: point.Lon}
	for _, d := range c.districts {
		if spatial.PointInMultiPolygon(location, d.Geometry) {
			return d.Name
		}
	}
	return ""
}

// Names returns district names in boundary-list order
func (c *Classifier) Names() []string {
	names := make([]string, 0, len(c.districts))
	for _, d := range c.districts {
		names = append(names, d.Name)
	}
	return names
}
