package experiment

import (
	"strings"
	"testing"

	"github.com/overheadlabs/spacenet/vegas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSceneGeoJSON(t *testing.T) {
	task := BuildTask(SemanticSegmentation, vegas.Buildings.Classes)
	scene := BuildScene(task, vegas.Buildings, "s3://spacenet-dataset", "12", []int{0, 1, 2}, nil)

	assert.Equal(t, "12", scene.ID)
	assert.True(t, scene.RasterSource.StatsTransform)
	assert.Equal(t, []int{0, 1, 2}, scene.RasterSource.ChannelOrder)
	assert.True(t, strings.HasSuffix(scene.RasterSource.URI, "img12.tif"), scene.RasterSource.URI)

	require.NotNil(t, scene.LabelSource.RasterSource)
	assert.Nil(t, scene.LabelSource.VectorSource)
	vs := scene.LabelSource.RasterSource.VectorSource
	assert.Equal(t, GeoJSONSource, vs.Type)
	assert.True(t, strings.HasSuffix(vs.URI, "img12.geojson"), vs.URI)
	assert.Equal(t, float64(15), vs.LineBufs[vegas.TargetClassID])
	assert.Equal(t, vegas.BackgroundClassID, scene.LabelSource.RasterSource.BackgroundClassID)
}

func TestBuildSceneVectorTile(t *testing.T) {
	vt := &vegas.VectorTileOptions{URI: "s3://tiles/roads.mbtiles", Zoom: 14, IDField: "osm_id"}
	task := BuildTask(SemanticSegmentation, vegas.Roads.Classes)
	scene := BuildScene(task, vegas.Roads, "s3://spacenet-dataset", "3", []int{0, 1, 2}, vt)

	require.NotNil(t, scene.LabelSource.RasterSource)
	vs := scene.LabelSource.RasterSource.VectorSource
	assert.Equal(t, VectorTileSource, vs.Type)
	assert.Equal(t, vt.URI, vs.URI)
	assert.Equal(t, 14, vs.Zoom)
	assert.Equal(t, "osm_id", vs.IDField)
	assert.Equal(t, []string{"has", "highway"}, vs.ClassIDToFilter[vegas.TargetClassID])
}

func TestBuildSceneLabelStore(t *testing.T) {
	// segmented building footprints get polygon vector output
	task := BuildTask(SemanticSegmentation, vegas.Buildings.Classes)
	scene := BuildScene(task, vegas.Buildings, "/data", "1", nil, nil)
	require.NotNil(t, scene.LabelStore)
	require.Len(t, scene.LabelStore.VectorOutputs, 1)
	out := scene.LabelStore.VectorOutputs[0]
	assert.Equal(t, "polygons", out.Mode)
	assert.Equal(t, vegas.TargetClassID, out.ClassID)
	assert.Equal(t, 3, out.Denoise)

	// roads do not
	task = BuildTask(SemanticSegmentation, vegas.Roads.Classes)
	scene = BuildScene(task, vegas.Roads, "/data", "1", nil, nil)
	assert.Nil(t, scene.LabelStore)

	// neither do building chip classification experiments
	task = BuildTask(ChipClassification, vegas.Buildings.Classes)
	scene = BuildScene(task, vegas.Buildings, "/data", "1", nil, nil)
	assert.Nil(t, scene.LabelStore)
}

func TestBuildSceneChipClassification(t *testing.T) {
	task := BuildTask(ChipClassification, vegas.Buildings.Classes)
	scene := BuildScene(task, vegas.Buildings, "/data", "9", nil, nil)

	ls := scene.LabelSource
	assert.Equal(t, ChipClassification, ls.Type)
	require.NotNil(t, ls.VectorSource)
	assert.Nil(t, ls.RasterSource)
	assert.Equal(t, 0.01, ls.IOAThresh)
	assert.True(t, ls.UseIntersectionOverCell)
	assert.True(t, ls.PickMinClassID)
	assert.True(t, ls.InferCells)
	assert.Equal(t, vegas.BackgroundClassID, ls.BackgroundClassID)
}

func TestBuildSceneObjectDetection(t *testing.T) {
	task := BuildTask(ObjectDetection, vegas.Buildings.Classes)
	scene := BuildScene(task, vegas.Buildings, "/data", "4", nil, nil)

	ls := scene.LabelSource
	assert.Equal(t, ObjectDetection, ls.Type)
	require.NotNil(t, ls.VectorSource)
	assert.Nil(t, ls.RasterSource)
	assert.Nil(t, scene.LabelStore)
}
