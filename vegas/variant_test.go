package vegas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantFromName(t *testing.T) {
	for _, name := range []string{"buildings", "Buildings", "BUILDINGS"} {
		v, err := VariantFromName(name)
		require.NoError(t, err)
		assert.Equal(t, Buildings.Name, v.Name)
	}

	v, err := VariantFromName("roads")
	require.NoError(t, err)
	assert.Equal(t, Roads.Name, v.Name)

	_, err = VariantFromName("vehicles")
	assert.Error(t, err)
}

func TestVariantURIs(t *testing.T) {
	assert.Equal(t,
		"/data/spacenet/SN2_buildings/train/AOI_2_Vegas/PS-RGB/SN2_buildings_train_AOI_2_Vegas_PS-RGB_img17.tif",
		Buildings.RasterURI("/data", "17"))
	assert.Equal(t,
		"/data/spacenet/SN2_buildings/train/AOI_2_Vegas/geojson_buildings/SN2_buildings_train_AOI_2_Vegas_geojson_buildings_img17.geojson",
		Buildings.LabelURI("/data", "17"))

	assert.Equal(t,
		"s3://spacenet-dataset/spacenet/SN3_roads/train/AOI_2_Vegas/geojson_roads",
		Roads.LabelDirURI("s3://spacenet-dataset"))
	assert.Equal(t,
		"s3://spacenet-dataset/spacenet/SN3_roads/train/AOI_2_Vegas/PS-RGB/SN3_roads_train_AOI_2_Vegas_PS-RGB_img3.tif",
		Roads.RasterURI("s3://spacenet-dataset", "3"))
}

func TestVariantClasses(t *testing.T) {
	for _, v := range []Variant{Buildings, Roads} {
		require.Len(t, v.Classes, 2)
		assert.Equal(t, TargetClassID, v.Classes[0].ID)
		assert.Equal(t, BackgroundClassID, v.Classes[1].ID)
		assert.Equal(t, "Background", v.Classes[1].Name)
		assert.Contains(t, v.ClassFilters, TargetClassID)
	}
}
