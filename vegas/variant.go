package vegas

import (
	"strings"

	"github.com/overheadlabs/spacenet/errors"
	"github.com/overheadlabs/spacenet/fileutil"
)

// Class ids shared by both variants: the target class is 1 and the
// background is 2. The background must come last when rasterizing labels.
const (
	TargetClassID     = 1
	BackgroundClassID = 2
)

// Class is one entry of a variant's class map.
type Class struct {
	Name  string `json:"name"`
	ID    int    `json:"id"`
	Color string `json:"color"`
}

// Variant describes one flavor of the SpaceNet Vegas dataset: where its
// rasters and labels live under the raw data root, how scene files are named,
// and the class taxonomy of its labels.
type Variant struct {
	Name string

	BaseDir      string
	RasterDir    string
	LabelDir     string
	RasterPrefix string
	LabelPrefix  string

	Classes []Class

	// ClassFilters maps a class id to the vector-tile filter expression used
	// to infer that class from tile features.
	ClassFilters map[int][]string
}

// Buildings is the SN2 building-footprint variant.
var Buildings = Variant{
	Name:         "buildings",
	BaseDir:      "spacenet/SN2_buildings/train/AOI_2_Vegas",
	RasterDir:    "PS-RGB",
	LabelDir:     "geojson_buildings",
	RasterPrefix: "SN2_buildings_train_AOI_2_Vegas_PS-RGB_img",
	LabelPrefix:  "SN2_buildings_train_AOI_2_Vegas_geojson_buildings_img",
	Classes: []Class{
		{Name: "Building", ID: TargetClassID, Color: "orange"},
		{Name: "Background", ID: BackgroundClassID, Color: "black"},
	},
	ClassFilters: map[int][]string{
		TargetClassID: {"has", "building"},
	},
}

// Roads is the SN3 road-network variant.
var Roads = Variant{
	Name:         "roads",
	BaseDir:      "spacenet/SN3_roads/train/AOI_2_Vegas",
	RasterDir:    "PS-RGB",
	LabelDir:     "geojson_roads",
	RasterPrefix: "SN3_roads_train_AOI_2_Vegas_PS-RGB_img",
	LabelPrefix:  "SN3_roads_train_AOI_2_Vegas_geojson_roads_img",
	Classes: []Class{
		{Name: "Road", ID: TargetClassID, Color: "orange"},
		{Name: "Background", ID: BackgroundClassID, Color: "black"},
	},
	ClassFilters: map[int][]string{
		TargetClassID: {"has", "highway"},
	},
}

// VariantFromName resolves a case-insensitive variant name.
func VariantFromName(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case Buildings.Name:
		return Buildings, nil
	case Roads.Name:
		return Roads, nil
	default:
		return Variant{}, errors.Errorf("%s is not a valid target", name)
	}
}

// RasterURI returns the uri of the scene's raster image under the raw data
// root.
func (v Variant) RasterURI(rawURI, id string) string {
	return fileutil.Join(rawURI, v.BaseDir, v.RasterDir, v.RasterPrefix+id+".tif")
}

// LabelURI returns the uri of the scene's GeoJSON label file under the raw
// data root.
func (v Variant) LabelURI(rawURI, id string) string {
	return fileutil.Join(rawURI, v.BaseDir, v.LabelDir, v.LabelPrefix+id+".geojson")
}

// LabelDirURI returns the uri of the directory holding the variant's label
// files.
func (v Variant) LabelDirURI(rawURI string) string {
	return fileutil.Join(rawURI, v.BaseDir, v.LabelDir)
}
