package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomicCreatesDirAndLeavesNoTemp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, "state.json")

	if err := WriteFileAtomic(path, []byte("one"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("two"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic overwrite failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("Expected 'two', got %q", got)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only the target file, found %d entries", len(entries))
	}
}

func TestJSONRoundTripAndIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	in := map[string][]string{"pending": {"a"}}

	if err := WriteJSON(path, in, "  "); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	raw, _ := os.ReadFile(path)
	want := "{\n  \"pending\": [\n    \"a\"\n  ]\n}"
	if string(raw) != want {
		t.Errorf("Unexpected encoding:\n%s", raw)
	}

	var out map[string][]string
	if err := ReadJSON(path, &out); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if len(out["pending"]) != 1 || out["pending"][0] != "a" {
		t.Errorf("Unexpected decode: %v", out)
	}
}

func TestReadJSONMissingAndMalformed(t *testing.T) {
	dir := t.TempDir()
	var v map[string]int

	err := ReadJSON(filepath.Join(dir, "missing.json"), &v)
	if !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{nope"), 0o644)
	if err := ReadJSON(bad, &v); err == nil || os.IsNotExist(err) {
		t.Errorf("Expected decode error, got %v", err)
	}
}
