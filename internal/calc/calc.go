// Package calc implements the four-function calculator used by cmd/calc.
package calc

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for calculator input.
var (
	ErrDivideByZero  = errors.New("cannot divide by zero")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNotANumber    = errors.New("not a number")
)

// Operator selects one of the supported arithmetic operations.
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Operators lists the menu entries in display order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

// String returns the menu label for the operator.
func (o Operator) String() string {
	switch o {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	default:
		return "Unknown"
	}
}

// Choice returns the menu selector ("1".."4") for the operator.
func (o Operator) Choice() string {
	return strconv.Itoa(int(o))
}

// ParseChoice maps a menu selector to an operator.
func ParseChoice(s string) (Operator, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return Add, nil
	case "2":
		return Subtract, nil
	case "3":
		return Multiply, nil
	case "4":
		return Divide, nil
	}
	return 0, ErrInvalidChoice
}

// ParseNumber parses a floating-point operand.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	return v, nil
}

// Compute applies op to a and b.
func Compute(a, b float64, op Operator) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	}
	return 0, ErrInvalidChoice
}

// FormatResult renders v using the shortest representation that round-trips.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
