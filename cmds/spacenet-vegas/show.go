package main

import (
	"encoding/json"
	"os"

	"github.com/overheadlabs/spacenet/cmdline"
	"github.com/overheadlabs/spacenet/experiment"
)

var showCmd = cmdline.Command{
	Name:     "show",
	Synopsis: "print a previously generated experiment config",
	Args:     &showArgs{},
}

type showArgs struct {
	URI string `arg:"positional,required" help:"experiment config uri (local or s3://)"`
}

func (args *showArgs) Handle() error {
	conf, err := experiment.ReadConfig(args.URI)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(conf)
}
