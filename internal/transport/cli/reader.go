package cli

import (
	"strings"

	"github.com/sandevgo/taxsh/internal/core"
)

// LineSource yields one line of input per call. It returns an error once
// the stream is closed or exhausted.
type LineSource interface {
	Readline() (string, error)
}

type Reader struct {
	src LineSource
}

func NewReader(src LineSource) *Reader {
	return &Reader{src: src}
}

// ReadCommand reads and tokenizes one line. Stream failures come back as
// *core.IOError and blank lines as core.ErrNoCommand.
func (r *Reader) ReadCommand() (core.ParsedCommand, error) {
	line, err := r.src.Readline()
	if err != nil {
		return core.ParsedCommand{}, &core.IOError{Err: err}
	}

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return core.ParsedCommand{}, core.ErrNoCommand
	}

	return core.ParsedCommand{
		Name: tokens[0],
		Args: tokens[1:],
	}, nil
}

// Tokenize splits on runs of whitespace and lower-cases every token.
func Tokenize(line string) []string {
	tokens := strings.Fields(line)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}
	return tokens
}
