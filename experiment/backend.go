package experiment

// Backend type names understood by the downstream trainer.
const (
	PytorchSemanticSegmentation = "pytorch_semantic_segmentation"
	PytorchChipClassification   = "pytorch_chip_classification"
	PytorchObjectDetection      = "pytorch_object_detection"
)

// BackendConfig describes the model backend and its training
// hyperparameters.
type BackendConfig struct {
	Type      string  `json:"type"`
	ModelArch string  `json:"model_arch"`
	LR        float64 `json:"lr,omitempty"`
	OneCycle  bool    `json:"one_cycle,omitempty"`
	BatchSize int     `json:"batch_size"`
	NumEpochs int     `json:"num_epochs"`
	Debug     bool    `json:"debug"`
}

// BuildBackend returns the backend configuration for the given task. Reduced
// runs shrink the batch size and epoch count and turn on debug output.
func BuildBackend(task TaskConfig, reduced bool) BackendConfig {
	switch task.Type {
	case SemanticSegmentation:
		batchSize, numEpochs := 8, 2
		if reduced {
			batchSize, numEpochs = 2, 1
		}
		return BackendConfig{
			Type:      PytorchSemanticSegmentation,
			ModelArch: "resnet50",
			LR:        1e-4,
			BatchSize: batchSize,
			NumEpochs: numEpochs,
			Debug:     reduced,
		}
	case ChipClassification:
		batchSize, numEpochs := 32, 2
		if reduced {
			batchSize, numEpochs = 2, 1
		}
		return BackendConfig{
			Type:      PytorchChipClassification,
			ModelArch: "resnet18",
			BatchSize: batchSize,
			NumEpochs: numEpochs,
			Debug:     reduced,
		}
	case ObjectDetection:
		batchSize, numEpochs := 16, 2
		if reduced {
			batchSize, numEpochs = 1, 2
		}
		return BackendConfig{
			Type:      PytorchObjectDetection,
			ModelArch: "resnet18",
			LR:        1e-4,
			OneCycle:  true,
			BatchSize: batchSize,
			NumEpochs: numEpochs,
			Debug:     reduced,
		}
	default:
		panic("unknown task type " + string(task.Type))
	}
}
