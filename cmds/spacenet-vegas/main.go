package main

import (
	"github.com/overheadlabs/spacenet/cmdline"
)

func main() {
	cmdline.MustDispatch(generateCmd, scenesCmd, splitCmd, showCmd)
}
