package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// HandlerFunc runs one command and returns the reply text. Returned errors
// are reported to the conversation by Dispatch.
type HandlerFunc func(ctx context.Context, b *Bot, cmd *Command) (string, error)

// CommandSpec describes one registered command.
type CommandSpec struct {
	Name    string
	Usage   string // arguments only, e.g. "<key> <value>"
	Summary string
	Handler HandlerFunc
}

// Registry maps command names to handlers. Order of registration is kept
// for !help.
type Registry struct {
	commands map[string]CommandSpec
	order    []string
}

// NewRegistry builds a registry from specs. Later duplicates are kept in the
// order slice so Validate can report them.
func NewRegistry(specs ...CommandSpec) *Registry {
	r := &Registry{commands: make(map[string]CommandSpec, len(specs))}
	for _, spec := range specs {
		r.order = append(r.order, spec.Name)
		if _, exists := r.commands[spec.Name]; !exists {
			r.commands[spec.Name] = spec
		}
	}
	return r
}

// Validate checks every entry once at startup.
func (r *Registry) Validate() error {
	if len(r.order) == 0 {
		return errors.New("no commands registered")
	}

	var errs []error
	seen := make(map[string]bool, len(r.order))
	for _, name := range r.order {
		if seen[name] {
			errs = append(errs, fmt.Errorf("command %q registered twice", name))
			continue
		}
		seen[name] = true

		spec := r.commands[name]
		switch {
		case name == "":
			errs = append(errs, errors.New("command with empty name"))
		case strings.IndexFunc(name, unicode.IsSpace) >= 0:
			errs = append(errs, fmt.Errorf("command %q contains whitespace", name))
		case strings.ToLower(name) != name:
			errs = append(errs, fmt.Errorf("command %q must be lower-case", name))
		}
		if spec.Handler == nil {
			errs = append(errs, fmt.Errorf("command %q has no handler", name))
		}
		if spec.Summary == "" {
			errs = append(errs, fmt.Errorf("command %q has no summary", name))
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (CommandSpec, bool) {
	spec, ok := r.commands[name]
	return spec, ok
}

// Specs returns the registered commands in registration order.
func (r *Registry) Specs() []CommandSpec {
	specs := make([]CommandSpec, 0, len(r.commands))
	seen := make(map[string]bool, len(r.order))
	for _, name := range r.order {
		if seen[name] {
			continue
		}
		seen[name] = true
		specs = append(specs, r.commands[name])
	}
	return specs
}

// minSuggestLength keeps one- and two-letter typos from matching everything.
const minSuggestLength = 3

// Suggest returns the closest registered name to an unknown one.
func (r *Registry) Suggest(name string) (string, bool) {
	if len(name) < minSuggestLength {
		return "", false
	}

	names := make([]string, 0, len(r.commands))
	for _, spec := range r.Specs() {
		names = append(names, spec.Name)
	}

	matches := fuzzy.Find(strings.ToLower(name), names)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
