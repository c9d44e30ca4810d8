package experiment

import (
	"github.com/overheadlabs/spacenet/errors"
	"github.com/overheadlabs/spacenet/vegas"
)

// DatasetConfig holds the train and validation scenes of an experiment.
type DatasetConfig struct {
	TrainScenes      []SceneConfig `json:"train_scenes"`
	ValidationScenes []SceneConfig `json:"validation_scenes"`
}

// BuildDataset discovers the variant's scenes under the raw data root, splits
// them deterministically, and builds the per-scene configurations.
func BuildDataset(task TaskConfig, v vegas.Variant, rawURI string, reduced bool, vt *vegas.VectorTileOptions) (DatasetConfig, error) {
	ids, err := v.SceneIDs(rawURI)
	if err != nil {
		return DatasetConfig{}, err
	}

	trainIDs, valIDs, err := vegas.SplitSceneIDs(ids, reduced)
	if err != nil {
		return DatasetConfig{}, errors.Wrapf(err, "unable to split scenes for %s", v.Name)
	}

	channelOrder := []int{0, 1, 2}

	var dataset DatasetConfig
	for _, id := range trainIDs {
		dataset.TrainScenes = append(dataset.TrainScenes, BuildScene(task, v, rawURI, id, channelOrder, vt))
	}
	for _, id := range valIDs {
		dataset.ValidationScenes = append(dataset.ValidationScenes, BuildScene(task, v, rawURI, id, channelOrder, vt))
	}
	return dataset, nil
}
