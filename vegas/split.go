package vegas

import (
	"math"
	"math/rand"
	"sort"

	"github.com/overheadlabs/spacenet/errors"
)

const (
	// SplitSeed fixes the shuffle so the train/validation assignment is
	// reproducible across runs.
	SplitSeed = 5678

	// TrainRatio is the fraction of scenes assigned to training.
	TrainRatio = 0.8

	// missingSceneID is absent from the SpaceNet S3 bucket even though its
	// label file exists, so it is dropped before splitting.
	missingSceneID = "1000"

	// Scene counts used when a reduced run is requested.
	reducedTrainScenes    = 16
	reducedValidateScenes = 4
)

// Split partitions scene ids into train and validation sets. The ids are
// sorted before shuffling because directory enumeration order is not stable
// across filesystems, and the shuffle is seeded, so the same input set always
// produces the same partition. In reduced mode the sets are truncated to a
// handful of scenes for fast smoke tests.
func Split(ids []string, seed int64, ratio float64, reduced bool) (train, validate []string, err error) {
	sorted := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == missingSceneID {
			continue
		}
		sorted = append(sorted, id)
	}
	if len(sorted) == 0 {
		return nil, nil, errors.Errorf("no scenes left to split, something is configured incorrectly")
	}
	sort.Strings(sorted)

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(sorted), func(i, j int) {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	})

	numTrain := int(math.Round(float64(len(sorted)) * ratio))
	train = sorted[:numTrain]
	validate = sorted[numTrain:]

	if reduced {
		if len(train) > reducedTrainScenes {
			train = train[:reducedTrainScenes]
		}
		if len(validate) > reducedValidateScenes {
			validate = validate[:reducedValidateScenes]
		}
	}
	return train, validate, nil
}

// SplitSceneIDs is Split with the standard seed and ratio.
func SplitSceneIDs(ids []string, reduced bool) (train, validate []string, err error) {
	return Split(ids, SplitSeed, TrainRatio, reduced)
}
