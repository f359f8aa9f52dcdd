package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
)

// ReadlineSource is the interactive LineSource backed by a terminal.
type ReadlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource opens the terminal. historyPath may be empty to keep
// input history in memory only.
func NewReadlineSource(prompt, historyPath string) (*ReadlineSource, error) {
	if historyPath != "" {
		if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadlineSource{rl: rl}, nil
}

// Readline maps Ctrl+C on an empty line to io.EOF; Ctrl+C with pending
// input discards that input.
func (s *ReadlineSource) Readline() (string, error) {
	line, err := s.rl.Readline()
	if err == readline.ErrInterrupt {
		if len(line) == 0 {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

func (s *ReadlineSource) Stdout() io.Writer {
	return s.rl.Stdout()
}

func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}
