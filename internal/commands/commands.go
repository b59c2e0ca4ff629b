// Package commands implements the console command registry: lines of the form
// "cmd <name> [flags] [args]" are tokenized shell-style and dispatched to registered commands.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"
)

const prefix = "cmd "

var (
	// ErrMissingSubcommand is returned by Execute for an empty command line.
	ErrMissingSubcommand = errors.New("missing subcommand")
	// ErrUnknownCommand is returned by Execute for a name nobody registered.
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse with the remaining positional args.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "add").
// fs may be nil for commands without flags; its output is discarded so parse errors only
// surface through Execute's error.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	c, ok := r.cmds[name]
	return c, ok
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized with shell quoting rules and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool, err error) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false, nil
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true, nil
	}
	args, err = shellwords.Parse(rest)
	if err != nil {
		return nil, true, fmt.Errorf("parse command line: %w", err)
	}
	return args, true, nil
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissingSubcommand
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// ExecuteLine parses and runs line. Lines without the "cmd " prefix report handled false.
func (r *Registry) ExecuteLine(line string) (handled bool, err error) {
	args, ok, err := Parse(line)
	if !ok {
		return false, nil
	}
	if err != nil {
		return true, err
	}
	return true, r.Execute(args)
}
