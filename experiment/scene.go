package experiment

import (
	"github.com/overheadlabs/spacenet/vegas"
)

// Vector source type names.
const (
	GeoJSONSource    = "geojson"
	VectorTileSource = "vector_tile"
)

// lineBuffer is the buffer, in pixels, applied to line strings so road
// centerlines rasterize as polygons.
const lineBuffer = 15

// RasterSourceConfig points the trainer at a scene's imagery. The SpaceNet
// rasters are uint16, so every source carries a stats transform.
type RasterSourceConfig struct {
	URI            string `json:"uri"`
	ChannelOrder   []int  `json:"channel_order,omitempty"`
	StatsTransform bool   `json:"stats_transform"`
}

// VectorSourceConfig points the trainer at a scene's vector labels, either a
// per-scene GeoJSON file or a tiled vector dataset.
type VectorSourceConfig struct {
	Type string `json:"type"`
	URI  string `json:"uri"`

	// vector tile sources only
	Zoom            int              `json:"zoom,omitempty"`
	IDField         string           `json:"id_field,omitempty"`
	ClassIDToFilter map[int][]string `json:"class_id_to_filter,omitempty"`

	// LineBufs maps a class id to the buffer applied to its line strings.
	LineBufs map[int]float64 `json:"line_bufs,omitempty"`
}

// RasterizedSourceConfig rasterizes a vector source so it can feed a
// segmentation label source.
type RasterizedSourceConfig struct {
	VectorSource      VectorSourceConfig `json:"vector_source"`
	BackgroundClassID int                `json:"background_class_id"`
}

// LabelSourceConfig describes where a scene's training labels come from. The
// populated fields depend on the task type.
type LabelSourceConfig struct {
	Type         TaskType                `json:"type"`
	RasterSource *RasterizedSourceConfig `json:"raster_source,omitempty"`
	VectorSource *VectorSourceConfig     `json:"vector_source,omitempty"`

	// chip classification only
	IOAThresh               float64 `json:"ioa_thresh,omitempty"`
	UseIntersectionOverCell bool    `json:"use_intersection_over_cell,omitempty"`
	PickMinClassID          bool    `json:"pick_min_class_id,omitempty"`
	BackgroundClassID       int     `json:"background_class_id,omitempty"`
	InferCells              bool    `json:"infer_cells,omitempty"`
}

// VectorOutput requests vectorized prediction output from a segmentation
// label store.
type VectorOutput struct {
	Mode    string `json:"mode"`
	ClassID int    `json:"class_id"`
	Denoise int    `json:"denoise"`
}

// LabelStoreConfig describes how a scene's predictions are written out.
type LabelStoreConfig struct {
	VectorOutputs []VectorOutput `json:"vector_outputs,omitempty"`
}

// SceneConfig ties one scene's raster source to its label source and optional
// label store.
type SceneConfig struct {
	ID           string             `json:"id"`
	RasterSource RasterSourceConfig `json:"raster_source"`
	LabelSource  LabelSourceConfig  `json:"label_source"`
	LabelStore   *LabelStoreConfig  `json:"label_store,omitempty"`
}

func buildVectorSource(v vegas.Variant, rawURI, id string, vt *vegas.VectorTileOptions) VectorSourceConfig {
	if vt == nil {
		return VectorSourceConfig{
			Type:     GeoJSONSource,
			URI:      v.LabelURI(rawURI, id),
			LineBufs: map[int]float64{vegas.TargetClassID: lineBuffer},
		}
	}
	return VectorSourceConfig{
		Type:            VectorTileSource,
		URI:             vt.URI,
		Zoom:            vt.Zoom,
		IDField:         vt.IDField,
		ClassIDToFilter: v.ClassFilters,
		LineBufs:        map[int]float64{vegas.TargetClassID: lineBuffer},
	}
}

// BuildScene returns the scene configuration for one scene id.
func BuildScene(task TaskConfig, v vegas.Variant, rawURI, id string, channelOrder []int, vt *vegas.VectorTileOptions) SceneConfig {
	rasterSource := RasterSourceConfig{
		URI:            v.RasterURI(rawURI, id),
		ChannelOrder:   channelOrder,
		StatsTransform: true,
	}

	vectorSource := buildVectorSource(v, rawURI, id, vt)

	var labelSource LabelSourceConfig
	var labelStore *LabelStoreConfig
	switch task.Type {
	case SemanticSegmentation:
		labelSource = LabelSourceConfig{
			Type: SemanticSegmentation,
			RasterSource: &RasterizedSourceConfig{
				VectorSource:      vectorSource,
				BackgroundClassID: vegas.BackgroundClassID,
			},
		}
		// building footprints are vectorized back into polygons
		if v.Name == vegas.Buildings.Name {
			labelStore = &LabelStoreConfig{
				VectorOutputs: []VectorOutput{
					{Mode: "polygons", ClassID: vegas.TargetClassID, Denoise: 3},
				},
			}
		}
	case ChipClassification:
		labelSource = LabelSourceConfig{
			Type:                    ChipClassification,
			VectorSource:            &vectorSource,
			IOAThresh:               0.01,
			UseIntersectionOverCell: true,
			PickMinClassID:          true,
			BackgroundClassID:       vegas.BackgroundClassID,
			InferCells:              true,
		}
	case ObjectDetection:
		labelSource = LabelSourceConfig{
			Type:         ObjectDetection,
			VectorSource: &vectorSource,
		}
	}

	return SceneConfig{
		ID:           id,
		RasterSource: rasterSource,
		LabelSource:  labelSource,
		LabelStore:   labelStore,
	}
}
