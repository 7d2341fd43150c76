package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// linePrompter asks yes/no questions on a line-oriented terminal. With
// assumeYes set every question is answered yes without reading input.
type linePrompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func newLinePrompter(in io.Reader, out io.Writer, assumeYes bool) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

func (p *linePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	if _, err := fmt.Fprintf(p.out, "%s [y/N]: ", question); err != nil {
		return false, err
	}

	type answer struct {
		line string
		err  error
	}
	read := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		read <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case got := <-read:
		if got.err != nil && !errors.Is(got.err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", got.err)
		}
		switch strings.ToLower(strings.TrimSpace(got.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

func (p *linePrompter) Notify(message string) {
	_, _ = fmt.Fprintln(p.out, message)
}
