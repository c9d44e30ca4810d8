package main

import (
	"log"

	"github.com/overheadlabs/spacenet/cmdline"
	"github.com/overheadlabs/spacenet/experiment"
	"github.com/overheadlabs/spacenet/vegas"
)

var generateCmd = cmdline.Command{
	Name:     "generate",
	Synopsis: "build an experiment config and write it under the root uri",
	Args: &generateArgs{
		Target:   vegas.Buildings.Name,
		TaskType: string(experiment.SemanticSegmentation),
		Test:     "false",
	},
}

type generateArgs struct {
	RawURI            string `arg:"positional,required" help:"root of the raw SpaceNet dataset (local or s3://)"`
	RootURI           string `arg:"positional,required" help:"root for experiment output (local or s3://)"`
	Target            string `help:"buildings or roads"`
	TaskType          string `arg:"--task-type" help:"semantic_segmentation, chip_classification, or object_detection"`
	Test              string `help:"true/false: run a reduced smoke-test experiment with debug output"`
	VectorTileOptions string `arg:"--vector-tile-options" help:"uri,zoom,id_field for a vector tile label source"`
}

func (args *generateArgs) Handle() error {
	reduced, err := vegas.ParseBool(args.Test)
	if err != nil {
		return err
	}

	variant, err := vegas.VariantFromName(args.Target)
	if err != nil {
		return err
	}

	task, err := experiment.TaskTypeFromName(args.TaskType)
	if err != nil {
		return err
	}

	if err := experiment.ValidateOptions(task, variant, args.VectorTileOptions); err != nil {
		return err
	}

	vt, err := vegas.ParseVectorTileOptions(args.VectorTileOptions)
	if err != nil {
		return err
	}

	conf, err := experiment.Build(experiment.Params{
		RawURI:            args.RawURI,
		RootURI:           args.RootURI,
		Variant:           variant,
		Task:              task,
		Reduced:           reduced,
		VectorTileOptions: vt,
	})
	if err != nil {
		return err
	}

	if err := conf.Write(); err != nil {
		return err
	}

	log.Printf("wrote experiment %s (%d train / %d validation scenes) to %s",
		conf.ID, len(conf.Dataset.TrainScenes), len(conf.Dataset.ValidationScenes), conf.URI())
	return nil
}
