package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Prompter reads one line of operator input after showing prompt. It returns
// io.EOF when the operator closes input or aborts.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

type terminalPrompter struct {
	state *liner.State
}

// NewTerminalPrompter reads from the process terminal with line editing and
// history. liner falls back to plain reads when stdin is not a terminal.
func NewTerminalPrompter() Prompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &terminalPrompter{state: state}
}

func (p *terminalPrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

func (p *terminalPrompter) Close() error {
	return p.state.Close()
}

type lineReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineReader prompts on out and reads newline-terminated input from in.
func NewLineReader(in io.Reader, out io.Writer) Prompter {
	return &lineReader{in: bufio.NewReader(in), out: out}
}

func (r *lineReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *lineReader) Close() error {
	return nil
}
