package main

import (
	"fmt"
	"strings"

	"github.com/overheadlabs/spacenet/cmdline"
	"github.com/overheadlabs/spacenet/vegas"
)

var splitCmd = cmdline.Command{
	Name:     "split",
	Synopsis: "preview the deterministic train/validation split",
	Args: &splitArgs{
		Target: vegas.Buildings.Name,
		Test:   "false",
	},
}

type splitArgs struct {
	RawURI string `arg:"positional,required" help:"root of the raw SpaceNet dataset (local or s3://)"`
	Target string `help:"buildings or roads"`
	Test   string `help:"true/false: truncate the split as a reduced run would"`
}

func (args *splitArgs) Handle() error {
	reduced, err := vegas.ParseBool(args.Test)
	if err != nil {
		return err
	}

	variant, err := vegas.VariantFromName(args.Target)
	if err != nil {
		return err
	}

	ids, err := variant.SceneIDs(args.RawURI)
	if err != nil {
		return err
	}

	train, validate, err := vegas.SplitSceneIDs(ids, reduced)
	if err != nil {
		return err
	}

	fmt.Printf("train (%d): %s\n", len(train), strings.Join(train, " "))
	fmt.Printf("validation (%d): %s\n", len(validate), strings.Join(validate, " "))
	return nil
}
