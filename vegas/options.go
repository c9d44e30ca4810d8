package vegas

import (
	"strconv"
	"strings"

	"github.com/overheadlabs/spacenet/errors"
)

// ParseBool parses a case-insensitive "true"/"false" string. Anything else is
// a configuration error; unlike strconv.ParseBool, "1" and "0" are rejected.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.Errorf("%s is expected to be true or false", s)
	}
}

// VectorTileOptions configures an alternative label source backed by a tiled
// vector dataset instead of per-scene GeoJSON files.
type VectorTileOptions struct {
	URI     string
	Zoom    int
	IDField string
}

// ParseVectorTileOptions decodes a "uri,zoom,id_field" option string. An
// empty string means no vector tile source and yields nil.
func ParseVectorTileOptions(s string) (*VectorTileOptions, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, errors.Errorf("vector tile options needs to have 3 comma-delimited values, got %q", s)
	}

	zoom, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, errors.Errorf("vector tile zoom %q is not an integer", parts[1])
	}

	return &VectorTileOptions{
		URI:     strings.TrimSpace(parts[0]),
		Zoom:    zoom,
		IDField: strings.TrimSpace(parts[2]),
	}, nil
}
