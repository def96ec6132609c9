package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yaml"), "--data-dir", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlayScoreHistoryReset(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "play", "rock")
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if !strings.Contains(out, "You chose Rock — Computer chose") || !strings.Contains(out, "Score — You:") {
		t.Errorf("unexpected play output:\n%s", out)
	}

	out, err = execute(t, dir, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "PLAYED") || !strings.Contains(out, "rock") {
		t.Errorf("unexpected history output:\n%s", out)
	}

	out, err = execute(t, dir, "reset")
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !strings.Contains(out, "You: 0    Computer: 0") {
		t.Errorf("unexpected reset output:\n%s", out)
	}

	out, err = execute(t, dir, "score")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if !strings.Contains(out, "High Scores — You: 0    Computer: 0") {
		t.Errorf("unexpected score output:\n%s", out)
	}
}

func TestPlayRejectsUnknownMove(t *testing.T) {
	if _, err := execute(t, t.TempDir(), "play", "lizard"); err == nil {
		t.Error("expected error for unknown move")
	}
}

func TestHistoryEmpty(t *testing.T) {
	out, err := execute(t, t.TempDir(), "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "No rounds played yet") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
