package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"jotter/internal/logs"
	"jotter/internal/scanner"
)

// debounce collapses editor save bursts (temp file, rename, chmod) into one reload.
const debounce = 200 * time.Millisecond

// Watch reloads the workspace whenever a note file changes and then calls
// onChange. It blocks until ctx is cancelled.
func (ws *Workspace) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range scanner.WatchDirs(ws.cfg.Dirs, ws.cfg.RecursiveDirs) {
		if err := watcher.Add(dir); err != nil {
			logs.Logger.Printf("Warning: could not watch %s: %v", dir, err)
		}
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ws.relevant(watcher, event) {
				continue
			}
			logs.Logger.Printf("File event: %s %s", event.Op, event.Name)
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			pending = true

		case <-timer.C:
			pending = false
			ws.Reload()
			if onChange != nil {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logs.Logger.Printf("Watcher error: %v", err)
		}
	}
}

// relevant reports whether event touches a note. New directories under a
// recursive root are added to the watcher and count as a change.
func (ws *Workspace) relevant(watcher *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !scanner.ShouldSkipDir(filepath.Base(event.Name)) && ws.underRecursiveRoot(event.Name) {
				for _, dir := range scanner.WatchDirs(nil, []string{event.Name}) {
					_ = watcher.Add(dir)
				}
				return true
			}
			return false
		}
	}
	if event.Op == fsnotify.Chmod {
		return false
	}
	return scanner.IsNoteFile(filepath.Base(event.Name))
}

func (ws *Workspace) underRecursiveRoot(path string) bool {
	for _, root := range ws.cfg.RecursiveDirs {
		abs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(abs, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
