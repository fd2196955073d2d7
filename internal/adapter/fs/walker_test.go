package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWalker_IncludeExclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":                 "a",
		"docs/b.md":             "b",
		"docs/c.go":             "c",
		"node_modules/d.txt":    "d",
		".readability/e.txt":    "e",
		"deep/nested/dir/f.txt": "f",
	})

	w := NewWalker([]string{"**/*.txt", "**/*.md"}, []string{"**/node_modules/**", "**/.readability/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, f := range files {
		rel, _ := filepath.Rel(root, f.Path)
		got = append(got, filepath.ToSlash(rel))
	}

	expected := []string{"a.txt", "deep/nested/dir/f.txt", "docs/b.md"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("file %d: expected %s, got %s", i, expected[i], got[i])
		}
	}
}

func TestWalker_DefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"x.bin": "x", "y/z.txt": "z"})

	files, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
	for _, f := range files {
		if f.ModTime == 0 {
			t.Errorf("expected a mod time for %s", f.Path)
		}
	}
}

func TestReadFile_NormalizesLineSeparators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\rthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "one\ntwo\nthree\n" {
		t.Errorf("got %q", got)
	}
}

func TestReadFile_Missing(t *testing.T) {
	got, err := Reader{}.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if got != "" {
		t.Errorf("expected no text on failure, got %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(path, "118.175\n"); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "118.175\n" {
		t.Errorf("got %q", got)
	}
}

func TestReadFrom(t *testing.T) {
	got, err := ReadFrom(strings.NewReader("a\r\nb"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "a\nb" {
		t.Errorf("got %q", got)
	}
}
