package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader provides context-aware line reading that can be interrupted.
type NonBlockingReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewNonBlockingReader creates a new non-blocking reader.
func NewNonBlockingReader(reader io.Reader) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadString reads a string until delim, respecting context cancellation.
func (r *NonBlockingReader) ReadString(ctx context.Context, delim byte) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString(delim)
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine finishes on its own once input arrives.
		return "", ErrInputCancelled
	case res := <-resultCh:
		return res.value, res.err
	}
}

// ReadLine reads a line, respecting context cancellation. A final line
// without a newline is returned without error.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	line, err := r.ReadString(ctx, '\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// StepFunc produces the next line to show, or false when there is nothing left.
type StepFunc func() (string, bool)

// Step prints one line from next each time the user presses Enter, until next
// runs dry, the user types q, input ends, or ctx is canceled. It returns the
// number of lines shown.
func Step(ctx context.Context, in *NonBlockingReader, out io.Writer, next StepFunc) (int, error) {
	shown := 0
	for {
		line, ok := next()
		if !ok {
			return shown, nil
		}
		shown++

		if _, err := fmt.Fprintf(out, "%s  %s", line, FormatPrompt(SubtleStyle.Render("enter for more, q to stop"))); err != nil {
			return shown, err
		}

		answer, err := in.ReadLine(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return shown, nil
		case err != nil:
			return shown, err
		case strings.EqualFold(answer, "q"):
			return shown, nil
		}
	}
}
