package core

import (
	"context"
	"strings"
)

type Category int

const (
	CategoryGeneral Category = iota
	CategoryTaxes
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryTaxes}
}

func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "General"
	case CategoryTaxes:
		return "Taxes"
	default:
		return "Unknown"
	}
}

// ParamType declares how a raw argument token is converted before a command runs.
type ParamType int

const (
	ParamString ParamType = iota
	ParamFloat
)

func (t ParamType) String() string {
	switch t {
	case ParamString:
		return "string"
	case ParamFloat:
		return "float"
	default:
		return "unknown"
	}
}

type Param struct {
	Name string
	Type ParamType
}

// CommandSpec is the static descriptor of a dispatchable command.
// Params are positional and all required.
type CommandSpec struct {
	Name        string
	Params      []Param
	Description string
	Category    Category
}

// ParamNames returns the declared parameter names in positional order.
func (s CommandSpec) ParamNames() []string {
	names := make([]string, len(s.Params))
	for i, p := range s.Params {
		names[i] = p.Name
	}
	return names
}

// Usage renders the command as "name <param> ...".
func (s CommandSpec) Usage() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	for _, p := range s.Params {
		sb.WriteString(" <")
		sb.WriteString(p.Name)
		sb.WriteString(">")
	}
	return sb.String()
}

// ParsedCommand is one tokenized input line. Args never include the name.
type ParsedCommand struct {
	Name string
	Args []string
}

type CmdRouter interface {
	Dispatch(ctx context.Context, cmd ParsedCommand) (string, error)
	ListCommands() []CommandSpec
}

type Command interface {
	Spec() CommandSpec
	Execute(ctx context.Context, args []Value) (string, error)
}
