package district

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wawbus/fleet-analytics-go/internal/models"
)

// The first feature is the whole-city outline and must be skipped;
// coordinates are GeoJSON [lon, lat].
const boundariesFixture = `{
	"type": "FeatureCollection",
	"features": [
		{
			"properties": {"name": "Warszawa"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[20.0, 52.0], [22.0, 52.0], [22.0, 53.0], [20.0, 53.0], [20.0, 52.0]]]
			}
		},
		{
			"properties": {"name": "Mokotów"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[21.0, 52.15], [21.1, 52.15], [21.1, 52.25], [21.0, 52.25], [21.0, 52.15]]]
			}
		},
		{
			"properties": {"name": "Praga"},
			"geometry": {
				"type": "MultiPolygon",
				"coordinates": [
					[[[21.4, 52.2], [21.5, 52.2], [21.5, 52.3], [21.4, 52.3], [21.4, 52.2]]],
					[[[21.6, 52.4], [21.7, 52.4], [21.7, 52.5], [21.6, 52.5], [21.6, 52.4]]]
				]
			}
		}
	]
}`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "districts.geojson")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadSkipsCityOutline(t *testing.T) {
	classifier, err := Load(writeFixture(t, boundariesFixture))
	require.NoError(t, err)

	assert.Equal(t, []string{"Mokotów", "Praga"}, classifier.Names())
}

func TestClassify(t *testing.T) {
	classifier, err := Load(writeFixture(t, boundariesFixture))
	require.NoError(t, err)

	assert.Equal(t, "Mokotów", classifier.Classify(models.Point{Lat: 52.2, Lon: 21.05}))
	assert.Equal(t, "Praga", classifier.Classify(models.Point{Lat: 52.25, Lon: 21.45}))

	// Second member of the Praga multipolygon.
	assert.Equal(t, "Praga", classifier.Classify(models.Point{Lat: 52.45, Lon: 21.65}))

	// Inside the city outline but outside every district.
	assert.Equal(t, "", classifier.Classify(models.Point{Lat: 52.5, Lon: 20.5}))
}

func TestClassifyBoundaryConsistent(t *testing.T) {
	classifier, err := Load(writeFixture(t, boundariesFixture))
	require.NoError(t, err)

	boundary := models.Point{Lat: 52.15, Lon: 21.05}
	first := classifier.Classify(boundary)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifier.Classify(boundary))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFixture(t, "{not json"))
	assert.Error(t, err)
}

func TestLoadEmptyFeatureList(t *testing.T) {
	_, err := Load(writeFixture(t, `{"type": "FeatureCollection", "features": []}`))
	assert.Error(t, err)
}
