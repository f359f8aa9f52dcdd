package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExit is returned by the exit command to end the session.
	ErrExit = errors.New("exit requested")
	// ErrNoCommand is returned for a line that holds no tokens.
	ErrNoCommand = errors.New("no command")
)

// IOError reports that the input stream failed or was exhausted.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("input unavailable: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

type ArityError struct {
	Command string
	Usage   string
	Missing []string
	Extra   []string
}

func (e *ArityError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid arguments for %q:", e.Command)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&sb, " missing %s;", joinQuoted(e.Missing, "<", ">"))
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&sb, " unexpected %s;", joinQuoted(e.Extra, "\"", "\""))
	}
	fmt.Fprintf(&sb, " usage: %s", e.Usage)
	return sb.String()
}

type ParseError struct {
	Command  string
	Param    string
	Value    string
	Expected ParamType
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for <%s> of %q: expected a %s", e.Value, e.Param, e.Command, e.Expected)
}

type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q, type \"help\" for a list of commands", e.Name)
}

func joinQuoted(items []string, left, right string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = left + item + right
	}
	return strings.Join(quoted, ", ")
}
