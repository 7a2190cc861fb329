package aoc

import (
	"errors"
	"fmt"
)

// IOError reports a puzzle input that could not be read or fetched.
type IOError struct {
	Op   string // "read", "fetch", "write"
	Path string // file path or URL
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports an input line that does not have the expected shape.
// Line is 1-based; zero means the line number is not known yet.
type ParseError struct {
	Line int
	Text string // offending text; the whole line or the part that failed
	Msg  string
	Err  error // optional underlying error, e.g. from strconv
}

func (e *ParseError) Error() string {
	s := e.Msg
	if e.Line > 0 {
		s = fmt.Sprintf("line %d: %s", e.Line, s)
	}
	if e.Text != "" {
		s += fmt.Sprintf(": %q", e.Text)
	}
	if e.Err != nil {
		s += fmt.Sprintf(": %v", e.Err)
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf returns a ParseError for text with a formatted message.
func Errorf(text, format string, args ...any) *ParseError {
	return &ParseError{Text: text, Msg: fmt.Sprintf(format, args...)}
}

// AtLine attaches the 1-based line number n to err. If err is already a
// ParseError without a line number it is updated in place; any other error is
// wrapped in a new ParseError for line.
func AtLine(err error, n int, line string) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		if pe.Line == 0 {
			pe.Line = n
		}
		return err
	}
	return &ParseError{Line: n, Text: line, Msg: "bad line", Err: err}
}

// SampleError reports a solver whose answer for the worked sample does not
// match the want= value in its doc comment.
type SampleError struct {
	Solver string
	Got    string
	Want   string
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("%s sample: got %s, want %s", e.Solver, e.Got, e.Want)
}
