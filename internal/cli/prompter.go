package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Prompter reads user input line by line for the interactive menu. Reads
// respect context cancellation so an interrupt drops out of a pending
// prompt instead of blocking on stdin.
type Prompter struct {
	writer      io.Writer
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewPrompter creates a prompter over the given reader and writer,
// defaulting to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Writer returns the output stream prompts and renders are written to.
func (p *Prompter) Writer() io.Writer {
	return p.writer
}

// ReadLine prints the prompt and reads one trimmed line, respecting
// context cancellation. io.EOF propagates so callers can treat
// end-of-input as a request to exit.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		p.readingLock.Lock()
		defer p.readingLock.Unlock()

		value, err := p.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine finishes on its own; we return to the
		// caller immediately.
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		line := strings.TrimSpace(res.value)
		if res.err != nil && line == "" {
			return "", io.EOF
		}
		return line, nil
	}
}

// Choice prompts until the user enters one of the valid options
// (case-insensitive) or input ends. An empty line selects fallback when
// it is non-empty.
func (p *Prompter) Choice(ctx context.Context, prompt string, valid []string, fallback string) (string, error) {
	for {
		line, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		if line == "" && fallback != "" {
			return fallback, nil
		}
		line = strings.ToLower(line)
		for _, v := range valid {
			if line == v {
				return line, nil
			}
		}
		if _, err := fmt.Fprintln(p.writer, FormatWarning(fmt.Sprintf("Please choose one of: %s", strings.Join(valid, ", ")))); err != nil {
			return "", fmt.Errorf("failed to write warning: %w", err)
		}
	}
}
