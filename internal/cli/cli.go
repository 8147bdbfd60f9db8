package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"jotter/internal/markdown"
	"jotter/internal/workspace"
)

type runner struct {
	ws     *workspace.Workspace
	out    io.Writer
	errOut io.Writer
	now    func() time.Time
	// width is the terminal width when stdout is a terminal, otherwise 0
	width int
	// engine overrides the configured preview engine
	engine markdown.Engine
}

// Run executes the CLI with the given arguments and returns the exit code.
func Run(args []string, ws *workspace.Workspace) int {
	r := &runner{ws: ws, out: os.Stdout, errOut: os.Stderr, now: time.Now}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			r.width = w
		}
	}
	return r.run(args)
}

func (r *runner) run(args []string) int {
	if len(args) == 0 {
		r.printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "list", "ls", "l":
		return r.runList(cmdArgs)
	case "show", "cat":
		return r.runShow(cmdArgs)
	case "export":
		return r.runExport(cmdArgs)
	case "new", "add", "a":
		return r.runNew(cmdArgs)
	case "tag":
		return r.runTag(cmdArgs)
	case "templates":
		return r.runTemplates(cmdArgs)
	case "categories":
		return r.runCategories(cmdArgs)
	case "help", "-h", "--help":
		r.printUsage()
		return 0
	default:
		fmt.Fprintf(r.errOut, "Unknown command: %s\n", command)
		r.printUsage()
		return 1
	}
}

func (r *runner) printUsage() {
	fmt.Fprintln(r.out, `jotter - Markdown notes with search, preview and export

Usage: jotter [flags] [command] [arguments]

Commands:
  list, ls    List notes
              jotter list -q meeting -c Work -r week -s title -o asc
  show        Show a note (by id, title or path)
              jotter show "Team Sync"            # styled on a terminal
              jotter show --html "Team Sync"     # HTML preview
              jotter show --html --safe <id>     # sanitized HTML
  export      Export notes as json, txt, md or pdf
              jotter export -f md -c Work        # write to the export dir
              jotter export -f json --clipboard
              jotter export -f txt --stdout
  new, add    Create a note from a template
              jotter new -t meeting
              jotter new -t journal -c Personal --tags mood,daily
  tag         Add or remove tags on a note
              jotter tag <note> go review -r draft
  templates   List note templates (optionally by category or fuzzy query)
  categories  List categories and tags in use

Flags:
  -d, --dirs             Note directories (comma-separated)
  -R, --recursive-dirs   Note directories scanned recursively (comma-separated)
      --export-dir       Directory exports are written to
      --engine           Preview engine: ast or rules

Running jotter without arguments launches the interactive TUI.`)
}
