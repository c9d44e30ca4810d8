package vegas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	for input, expected := range map[string]bool{
		"true":  true,
		"True":  true,
		"TRUE":  true,
		"false": false,
		"False": false,
	} {
		val, err := ParseBool(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, val, input)
	}

	for _, input := range []string{"", "yes", "no", "1", "0", "truthy"} {
		_, err := ParseBool(input)
		assert.Error(t, err, input)
	}
}

func TestParseVectorTileOptions(t *testing.T) {
	vt, err := ParseVectorTileOptions("")
	require.NoError(t, err)
	assert.Nil(t, vt)

	vt, err = ParseVectorTileOptions("s3://tiles/roads.mbtiles,14,osm_id")
	require.NoError(t, err)
	require.NotNil(t, vt)
	assert.Equal(t, "s3://tiles/roads.mbtiles", vt.URI)
	assert.Equal(t, 14, vt.Zoom)
	assert.Equal(t, "osm_id", vt.IDField)

	_, err = ParseVectorTileOptions("tiles.mbtiles,14")
	assert.Error(t, err)

	_, err = ParseVectorTileOptions("tiles.mbtiles,14,osm_id,extra")
	assert.Error(t, err)

	_, err = ParseVectorTileOptions("tiles.mbtiles,fourteen,osm_id")
	assert.Error(t, err)
}
