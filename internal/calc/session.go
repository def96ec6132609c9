package calc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Session runs one interactive calculation over a line-oriented stream.
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

// NewSession creates a session reading answers from in and writing prompts to out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewReader(in), out: out}
}

// Run prompts for two numbers and an operator, then prints the result or the
// reason no result was produced. Reported conditions (bad number, bad choice,
// division by zero) are written to out and Run returns them; the caller
// decides whether they are fatal. I/O errors are returned as-is.
func (s *Session) Run(ctx context.Context) error {
	a, err := s.promptNumber(ctx, "Enter first number: ")
	if err != nil {
		return err
	}
	b, err := s.promptNumber(ctx, "Enter second number: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Choose operation:")
	for _, op := range Operators {
		fmt.Fprintf(s.out, "%s. %s\n", op.Choice(), op)
	}

	line, err := s.prompt(ctx, "Enter choice (1/2/3/4): ")
	if err != nil {
		return err
	}
	op, err := ParseChoice(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid choice! Please choose 1-4.")
		return err
	}

	result, err := Compute(a, b, op)
	if errors.Is(err, ErrDivideByZero) {
		fmt.Fprintln(s.out, "Error: Cannot divide by zero!")
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Result: %s\n", FormatResult(result))
	return nil
}

func (s *Session) promptNumber(ctx context.Context, label string) (float64, error) {
	line, err := s.prompt(ctx, label)
	if err != nil {
		return 0, err
	}
	v, err := ParseNumber(line)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %q is not a number\n", line)
		return 0, fmt.Errorf("%w: %q", err, line)
	}
	return v, nil
}

func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IsReported reports whether err is a user-input condition that Run has
// already printed.
func IsReported(err error) bool {
	return errors.Is(err, ErrDivideByZero) ||
		errors.Is(err, ErrInvalidChoice) ||
		errors.Is(err, ErrNotANumber)
}
