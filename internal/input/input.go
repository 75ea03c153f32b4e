// Package input acquires the one new sample a session records.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput matches every *InputError via errors.Is.
var ErrInvalidInput = errors.New("invalid weight")

// InputError reports a value that could not be read as a weight.
type InputError struct {
	Raw string
	Err error
}

func (e *InputError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("invalid weight: %v", e.Err)
	}
	return fmt.Sprintf("invalid weight %q: %v", e.Raw, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidInput) match every InputError.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Acquirer yields the sample for the current session.
type Acquirer interface {
	Acquire(prompt string) (float64, error)
}

// Parse reads a weight from user text. Surrounding whitespace is ignored;
// anything that is not a finite real number is an *InputError.
func Parse(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &InputError{Err: errors.New("no value entered")}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InputError{Raw: s, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Raw: s, Err: errors.New("not a finite number")}
	}
	return v, nil
}

// Prompter asks on w and reads a single line from r.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns an interactive Acquirer.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Acquire writes prompt and blocks until a line (or EOF) arrives.
// EOF with no text is an *InputError so an aborted prompt never records.
func (p *Prompter) Acquire(prompt string) (float64, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return 0, fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read weight: %w", err)
	}
	if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
		return 0, &InputError{Err: io.ErrUnexpectedEOF}
	}
	return Parse(line)
}

// Fixed is an Acquirer for a value supplied up front (the --weight flag).
type Fixed float64

// Acquire returns the fixed value without prompting.
func (f Fixed) Acquire(string) (float64, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Raw: strconv.FormatFloat(v, 'g', -1, 64), Err: errors.New("not a finite number")}
	}
	return v, nil
}
