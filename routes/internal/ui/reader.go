package ui

import (
	"bufio"
	"io"

	"github.com/chzyer/readline"
)

// LineReader yields one line of user input per call, without the line
// terminator. It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

type ScannerReader struct {
	scanner *bufio.Scanner
}

func (r *ScannerReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func NewScannerReader(in io.Reader) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(in),
	}
}

// ReadlineReader reads from a terminal with line editing and history.
// Ctrl-C ends the session like Ctrl-D does.
type ReadlineReader struct {
	rl *readline.Instance
}

func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

func NewReadlineReader(historyFile string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl}, nil
}
