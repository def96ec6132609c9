package main

import (
	"bytes"
	"strings"
	"testing"
)

func runRoot(t *testing.T, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalcMultiply(t *testing.T) {
	out, err := runRoot(t, "6\n7\n3\n")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasSuffix(out, "Result: 42\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCalcDivideByZeroIsNotAFailure(t *testing.T) {
	out, err := runRoot(t, "10\n0\n4\n")
	if err != nil {
		t.Fatalf("divide by zero should exit normally, got %v", err)
	}
	if !strings.Contains(out, "Error: Cannot divide by zero!") || strings.Contains(out, "Result:") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCalcClosedInputFails(t *testing.T) {
	if _, err := runRoot(t, ""); err == nil {
		t.Error("expected an error when stdin closes before any input")
	}
}
