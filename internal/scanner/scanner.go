package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirScan holds everything discovered from scanning a single notes directory
type DirScan struct {
	RootDir   string
	Recursive bool
	NotePaths []string // absolute paths to .md files
}

// ScanDir scans a notes directory. Non-recursive scans only look at the top level.
func ScanDir(rootDir string, recursive bool) (*DirScan, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	scan := &DirScan{
		RootDir:   absRoot,
		Recursive: recursive,
	}

	if err := walkDir(absRoot, recursive, scan); err != nil {
		return nil, err
	}

	sort.Strings(scan.NotePaths)
	return scan, nil
}

// ScanAll scans every configured directory, skipping ones that fail.
func ScanAll(dirs, recursiveDirs []string) ([]*DirScan, []error) {
	var scans []*DirScan
	var errs []error

	add := func(dir string, recursive bool) {
		scan, err := ScanDir(dir, recursive)
		if err != nil {
			errs = append(errs, err)
			return
		}
		scans = append(scans, scan)
	}

	for _, dir := range dirs {
		add(dir, false)
	}
	for _, dir := range recursiveDirs {
		add(dir, true)
	}

	return scans, errs
}

func walkDir(dir string, recursive bool, scan *DirScan) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		absPath := filepath.Join(dir, name)

		if entry.IsDir() {
			if !recursive || ShouldSkipDir(name) {
				continue
			}
			if err := walkDir(absPath, recursive, scan); err != nil {
				return err
			}
			continue
		}

		if IsNoteFile(name) {
			scan.NotePaths = append(scan.NotePaths, absPath)
		}
	}

	return nil
}

// IsNoteFile returns true if the file is a markdown note
func IsNoteFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), ".md")
}

// ShouldSkipDir returns true for directories that should be skipped during scanning.
// templates/ and exports/ hold generated files, not notes.
func ShouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "vendor", "__pycache__", "target", "build", "dist", "templates", "exports":
		return true
	}
	return false
}

// WatchDirs lists the directories a file watcher must subscribe to: every
// configured root, plus the non-skipped subdirectories of recursive roots.
func WatchDirs(dirs, recursiveDirs []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(dir string) {
		abs, err := filepath.Abs(dir)
		if err != nil || seen[abs] {
			return
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			return
		}
		seen[abs] = true
		out = append(out, abs)
	}

	for _, dir := range dirs {
		add(dir)
	}
	for _, root := range recursiveDirs {
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			if path != root && ShouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			add(path)
			return nil
		})
	}
	return out
}
