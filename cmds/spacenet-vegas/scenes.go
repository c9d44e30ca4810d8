package main

import (
	"fmt"
	"sort"

	"github.com/overheadlabs/spacenet/cmdline"
	"github.com/overheadlabs/spacenet/vegas"
)

var scenesCmd = cmdline.Command{
	Name:     "scenes",
	Synopsis: "list the scene ids discovered under the raw data root",
	Args: &scenesArgs{
		Target: vegas.Buildings.Name,
	},
}

type scenesArgs struct {
	RawURI string `arg:"positional,required" help:"root of the raw SpaceNet dataset (local or s3://)"`
	Target string `help:"buildings or roads"`
}

func (args *scenesArgs) Handle() error {
	variant, err := vegas.VariantFromName(args.Target)
	if err != nil {
		return err
	}

	ids, err := variant.SceneIDs(args.RawURI)
	if err != nil {
		return err
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Println(id)
	}
	fmt.Printf("%d scenes for %s\n", len(ids), variant.Name)
	return nil
}
