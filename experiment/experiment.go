package experiment

import (
	"encoding/json"

	"github.com/overheadlabs/spacenet/errors"
	"github.com/overheadlabs/spacenet/fileutil"
	"github.com/overheadlabs/spacenet/vegas"
)

// StatsAnalyzer computes per-channel raster statistics before training. It is
// always enabled because the SpaceNet imagery is uint16.
const StatsAnalyzer = "stats_analyzer"

// ExperimentConfig is the complete configuration document handed to the
// downstream trainer.
type ExperimentConfig struct {
	ID        string        `json:"id"`
	Task      TaskConfig    `json:"task"`
	Backend   BackendConfig `json:"backend"`
	Analyzers []string      `json:"analyzers"`
	Dataset   DatasetConfig `json:"dataset"`
	RootURI   string        `json:"root_uri"`
}

// Params are the resolved, validated inputs of an experiment build.
type Params struct {
	RawURI  string
	RootURI string
	Variant vegas.Variant
	Task    TaskType
	Reduced bool

	VectorTileOptions *vegas.VectorTileOptions
}

// ValidateOptions checks the task/target combination and the raw vector tile
// option string. It runs before any scene discovery so incompatible requests
// fail fast.
func ValidateOptions(task TaskType, v vegas.Variant, vectorTileOptions string) error {
	switch task {
	case SemanticSegmentation, ChipClassification, ObjectDetection:
	default:
		return errors.Errorf("%s is not a valid task type", task)
	}

	if v.Name == vegas.Roads.Name && task == ObjectDetection {
		return errors.Errorf("%s is not a valid task type for target %q", task, v.Name)
	}

	if _, err := vegas.ParseVectorTileOptions(vectorTileOptions); err != nil {
		return err
	}
	return nil
}

// Build assembles the full experiment configuration: task, backend, analyzer,
// and the discovered-and-split dataset.
func Build(p Params) (ExperimentConfig, error) {
	if err := ValidateOptions(p.Task, p.Variant, ""); err != nil {
		return ExperimentConfig{}, err
	}

	task := BuildTask(p.Task, p.Variant.Classes)
	backend := BuildBackend(task, p.Reduced)

	dataset, err := BuildDataset(task, p.Variant, p.RawURI, p.Reduced, p.VectorTileOptions)
	if err != nil {
		return ExperimentConfig{}, err
	}

	return ExperimentConfig{
		ID:        p.Variant.Name + "-" + string(p.Task),
		Task:      task,
		Backend:   backend,
		Analyzers: []string{StatsAnalyzer},
		Dataset:   dataset,
		RootURI:   p.RootURI,
	}, nil
}

// URI returns where the experiment document is written under its root.
func (c ExperimentConfig) URI() string {
	return fileutil.Join(c.RootURI, c.ID+".json")
}

// Write serializes the experiment as JSON to its URI, locally or on S3.
func (c ExperimentConfig) Write() error {
	w, err := fileutil.NewBufferedWriter(c.URI())
	if err != nil {
		return errors.Wrapf(err, "unable to open %s for writing", c.URI())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		w.Close()
		return errors.Wrapf(err, "unable to encode experiment %s", c.ID)
	}
	return w.Close()
}

// ReadConfig loads a previously written experiment document from a local or
// remote uri.
func ReadConfig(uri string) (ExperimentConfig, error) {
	buf, err := fileutil.ReadFile(uri)
	if err != nil {
		return ExperimentConfig{}, errors.Wrapf(err, "unable to read experiment config %s", uri)
	}

	var c ExperimentConfig
	if err := json.Unmarshal(buf, &c); err != nil {
		return ExperimentConfig{}, errors.Wrapf(err, "unable to decode experiment config %s", uri)
	}
	return c, nil
}
