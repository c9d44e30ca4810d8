package vegas

import (
	"regexp"

	"github.com/overheadlabs/spacenet/errors"
	"github.com/overheadlabs/spacenet/fileutil"
)

// SceneIDs scans the variant's label directory under the raw data root and
// returns the numeric scene ids extracted from the label filenames. Files
// that do not follow the label naming scheme are skipped.
func (v Variant) SceneIDs(rawURI string) ([]string, error) {
	labelDir := v.LabelDirURI(rawURI)
	paths, err := fileutil.ListDir(labelDir)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list labels under %s", labelDir)
	}

	labelRe := regexp.MustCompile(`.*` + regexp.QuoteMeta(v.LabelPrefix) + `(\d+)\.geojson$`)

	var ids []string
	for _, path := range paths {
		m := labelRe.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		ids = append(ids, m[1])
	}

	if len(ids) == 0 {
		return nil, errors.Errorf("no scenes found under %s, something is configured incorrectly", labelDir)
	}
	return ids, nil
}
