package cmdline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	arg "github.com/alexflint/go-arg"
)

// Command represents an action that can be run from the command line
type Command struct {
	Name     string
	Synopsis string
	Args     Handler
}

// Handler represents a function that gets called for an action
type Handler interface {
	Handle() error
}

// Validator is the interface for custom validation of command line arguments
type Validator interface {
	Validate() error
}

func prog() string {
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "program"
}

func usage(w io.Writer, cmds []Command) {
	fmt.Fprintf(w, "Usage: %s COMMAND [ARGS]\n\nCommands:\n", prog())
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %-12s %s\n", cmd.Name, cmd.Synopsis)
	}
	fmt.Fprintf(w, "  %-12s %s\n", "help", "display this help, or help for a command, and exit")
}

func find(cmds []Command, name string) *Command {
	for i := range cmds {
		if cmds[i].Name == name {
			return &cmds[i]
		}
	}
	return nil
}

// MustDispatch parses the command line, dispatches the matching command, and
// exits on any usage or handler error.
func MustDispatch(cmds ...Command) {
	if len(os.Args) < 2 {
		usage(os.Stderr, cmds)
		fmt.Fprintln(os.Stderr, "\nError: no command provided")
		os.Exit(1)
	}

	action := os.Args[1]
	rest := os.Args[2:]

	var showHelp bool
	if action == "help" {
		if len(rest) == 0 {
			usage(os.Stdout, cmds)
			os.Exit(0)
		}
		showHelp = true
		action = rest[0]
		rest = rest[1:]
	}

	cmd := find(cmds, action)
	if cmd == nil {
		usage(os.Stderr, cmds)
		fmt.Fprintln(os.Stderr, "\nError: unknown command", action)
		os.Exit(1)
	}

	parser, err := arg.NewParser(arg.Config{Program: prog() + " " + cmd.Name}, cmd.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if showHelp {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}

	if err := parser.Parse(rest); err != nil {
		parser.Fail(err.Error())
	}

	if v, ok := cmd.Args.(Validator); ok {
		if err := v.Validate(); err != nil {
			parser.Fail(err.Error())
		}
	}

	if err := cmd.Args.Handle(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
