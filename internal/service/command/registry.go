package command

import (
	"errors"
	"fmt"

	"github.com/sandevgo/taxsh/internal/core"
)

// Registry is the fixed, ordered set of commands known to the shell.
type Registry struct {
	commands map[string]core.Command
	order    []string
}

// NewRegistry fails if a command has an empty name or two commands share a name.
func NewRegistry(commands ...core.Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]core.Command, len(commands)),
		order:    make([]string, 0, len(commands)),
	}

	for _, cmd := range commands {
		name := cmd.Spec().Name
		if name == "" {
			return nil, errors.New("command with empty name")
		}
		if _, ok := r.commands[name]; ok {
			return nil, fmt.Errorf("duplicate command name %q", name)
		}
		r.commands[name] = cmd
		r.order = append(r.order, name)
	}
	return r, nil
}

func (r *Registry) Lookup(name string) (core.Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All returns every spec in registration order.
func (r *Registry) All() []core.CommandSpec {
	specs := make([]core.CommandSpec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.commands[name].Spec())
	}
	return specs
}

// ByCategory groups specs per category, keeping registration order inside each group.
func (r *Registry) ByCategory() map[core.Category][]core.CommandSpec {
	result := make(map[core.Category][]core.CommandSpec)
	for _, spec := range r.All() {
		result[spec.Category] = append(result[spec.Category], spec)
	}
	return result
}
