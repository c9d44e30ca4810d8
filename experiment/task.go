package experiment

import (
	"strings"

	"github.com/overheadlabs/spacenet/errors"
	"github.com/overheadlabs/spacenet/vegas"
)

// TaskType identifies the kind of model the experiment trains.
type TaskType string

// The task types understood by the downstream trainer.
const (
	SemanticSegmentation TaskType = "semantic_segmentation"
	ChipClassification   TaskType = "chip_classification"
	ObjectDetection      TaskType = "object_detection"
)

// TaskTypeFromName resolves a case-insensitive task type name.
func TaskTypeFromName(name string) (TaskType, error) {
	switch t := TaskType(strings.ToLower(name)); t {
	case SemanticSegmentation, ChipClassification, ObjectDetection:
		return t, nil
	default:
		return "", errors.Errorf("%s is not a valid task type", name)
	}
}

// ChipOptions controls how training chips are cut from scenes.
type ChipOptions struct {
	ChipsPerScene        int     `json:"chips_per_scene,omitempty"`
	DebugChipProbability float64 `json:"debug_chip_probability,omitempty"`
	NegativeSurvival     float64 `json:"negative_survival_probability,omitempty"`
	TargetClasses        []int   `json:"target_classes,omitempty"`
	TargetCountThreshold int     `json:"target_count_threshold,omitempty"`
	NegRatio             float64 `json:"neg_ratio,omitempty"`
	IOAThresh            float64 `json:"ioa_thresh,omitempty"`
}

// PredictOptions controls object detection inference.
type PredictOptions struct {
	MergeThresh float64 `json:"merge_thresh"`
	ScoreThresh float64 `json:"score_thresh"`
}

// TaskConfig describes the training task handed to the downstream trainer.
type TaskConfig struct {
	Type           TaskType         `json:"type"`
	ChipSize       int              `json:"chip_size"`
	Classes        []vegas.Class `json:"classes"`
	ChipOptions    *ChipOptions     `json:"chip_options,omitempty"`
	PredictOptions *PredictOptions  `json:"predict_options,omitempty"`
}

// BuildTask returns the task configuration for the given task type and class
// taxonomy.
func BuildTask(t TaskType, classes []vegas.Class) TaskConfig {
	switch t {
	case SemanticSegmentation:
		return TaskConfig{
			Type:     t,
			ChipSize: 300,
			Classes:  classes,
			ChipOptions: &ChipOptions{
				ChipsPerScene:        9,
				DebugChipProbability: 0.25,
				NegativeSurvival:     1.0,
				TargetClasses:        []int{vegas.TargetClassID},
				TargetCountThreshold: 1000,
			},
		}
	case ChipClassification:
		return TaskConfig{
			Type:     t,
			ChipSize: 200,
			Classes:  classes,
		}
	case ObjectDetection:
		return TaskConfig{
			Type:     t,
			ChipSize: 300,
			Classes:  classes,
			ChipOptions: &ChipOptions{
				NegRatio:  1.0,
				IOAThresh: 0.8,
			},
			PredictOptions: &PredictOptions{
				MergeThresh: 0.1,
				ScoreThresh: 0.5,
			},
		}
	default:
		// callers resolve the task type through TaskTypeFromName first
		panic("unknown task type " + string(t))
	}
}
