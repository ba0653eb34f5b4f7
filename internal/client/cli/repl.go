package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dayadevraha/devraha/internal/client/forms"
)

// command is one REPL verb.
type command struct {
	name    string
	aliases []string
	usage   string
	help    string
	run     func(ctx context.Context, args []string) error
}

// commandSet resolves verbs to commands and keeps help order.
type commandSet struct {
	ordered []*command
	byName  map[string]*command
}

func newCommandSet(cmds ...*command) *commandSet {
	cs := &commandSet{byName: make(map[string]*command)}
	for _, c := range cmds {
		cs.ordered = append(cs.ordered, c)
		cs.byName[c.name] = c
		for _, alias := range c.aliases {
			cs.byName[alias] = c
		}
	}
	return cs
}

func (cs *commandSet) lookup(name string) (*command, bool) {
	c, ok := cs.byName[strings.ToLower(name)]
	return c, ok
}

func (cs *commandSet) printHelp(out io.Writer) {
	fmt.Fprintln(out, "Available commands:")
	for _, c := range cs.ordered {
		usage := c.name
		if c.usage != "" {
			usage += " " + c.usage
		}
		fmt.Fprintf(out, "  %-28s %s\n", usage, c.help)
	}
	fmt.Fprintf(out, "  %-28s %s\n", "exit | quit", "leave the program")
}

// runREPL reads one command per line from reader and dispatches it. The
// prompt, help and errors go to out. Errors returned by commands are printed
// and the loop goes on; it ends on EOF, a cancelled context, or exit/quit.
func runREPL(ctx context.Context, cmds *commandSet, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "devraha %s> \n", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch strings.ToLower(name) {
		case "help", "?":
			cmds.printHelp(out)
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		}

		cmd, ok := cmds.lookup(name)
		if !ok {
			fmt.Fprintln(out, "Unknown command:", name, "(type 'help' for commands)")
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			printError(out, err)
		}
	}
}

func printError(out io.Writer, err error) {
	var fe *forms.Errors
	if errors.As(err, &fe) {
		for _, f := range fe.Fields() {
			fmt.Fprintln(out, "  -", fe.Field(f))
		}
		return
	}
	fmt.Fprintln(out, "Error:", err.Error())
}
