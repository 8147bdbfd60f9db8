package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2024-01-01-alpha.md"), "# Alpha")
	writeFile(t, filepath.Join(root, "beta.MD"), "# Beta")
	writeFile(t, filepath.Join(root, "todo.txt"), "not a note")
	writeFile(t, filepath.Join(root, ".hidden.md"), "hidden")
	writeFile(t, filepath.Join(root, "work", "gamma.md"), "# Gamma")
	writeFile(t, filepath.Join(root, ".git", "delta.md"), "# Delta")
	writeFile(t, filepath.Join(root, "templates", "daily.md"), "# Template")
	writeFile(t, filepath.Join(root, "exports", "notes-export-1.md"), "# Export")
	return root
}

func TestScanDir_TopLevelOnly(t *testing.T) {
	scan, err := ScanDir(fixture(t), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scan.NotePaths) != 2 {
		t.Fatalf("expected 2 notes, got %d: %v", len(scan.NotePaths), scan.NotePaths)
	}
	if filepath.Base(scan.NotePaths[0]) != "2024-01-01-alpha.md" {
		t.Errorf("expected sorted paths, got %v", scan.NotePaths)
	}
}

func TestScanDir_Recursive(t *testing.T) {
	scan, err := ScanDir(fixture(t), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := make(map[string]bool)
	for _, p := range scan.NotePaths {
		names[filepath.Base(p)] = true
	}

	if len(names) != 3 {
		t.Fatalf("expected 3 notes, got %v", scan.NotePaths)
	}
	for _, expected := range []string{"2024-01-01-alpha.md", "beta.MD", "gamma.md"} {
		if !names[expected] {
			t.Errorf("expected note %q not found", expected)
		}
	}
	for _, skipped := range []string{"delta.md", "daily.md", "notes-export-1.md", ".hidden.md"} {
		if names[skipped] {
			t.Errorf("note %q should have been skipped", skipped)
		}
	}
}

func TestScanDir_MissingDir(t *testing.T) {
	scan, err := ScanDir(filepath.Join(t.TempDir(), "nope"), true)
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(scan.NotePaths) != 0 {
		t.Errorf("expected no notes, got %v", scan.NotePaths)
	}
}

func TestScanAll(t *testing.T) {
	root := fixture(t)
	scans, errs := ScanAll([]string{root}, []string{filepath.Join(root, "work")})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(scans) != 2 {
		t.Fatalf("expected 2 scans, got %d", len(scans))
	}
	if scans[1].Recursive != true {
		t.Error("expected second scan to be recursive")
	}
}

func TestWatchDirs(t *testing.T) {
	root := fixture(t)
	flat := t.TempDir()

	dirs := WatchDirs([]string{flat, flat, filepath.Join(flat, "missing")}, []string{root})

	want := map[string]bool{
		flat:                        true,
		root:                        true,
		filepath.Join(root, "work"): true,
	}
	if len(dirs) != len(want) {
		t.Fatalf("expected %d dirs, got %v", len(want), dirs)
	}
	for _, d := range dirs {
		if !want[d] {
			t.Errorf("unexpected watch dir %q", d)
		}
	}
}
