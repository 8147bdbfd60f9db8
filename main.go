package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jotter/internal/cli"
	"jotter/internal/config"
	"jotter/internal/logs"
	"jotter/internal/tui"
	"jotter/internal/workspace"
)

func main() {
	dirsFlag := flag.String("dirs", "", "Note directories (comma-separated)")
	flag.StringVar(dirsFlag, "d", "", "Note directories (shorthand, comma-separated)")
	recursiveFlag := flag.String("recursive-dirs", "", "Note directories scanned recursively (comma-separated)")
	flag.StringVar(recursiveFlag, "R", "", "Recursive note directories (shorthand, comma-separated)")
	exportDirFlag := flag.String("export-dir", "", "Directory exports are written to")
	engineFlag := flag.String("engine", "", "Preview engine: ast or rules")
	flag.Parse()

	cfg, err := config.Load(config.CLIFlags{
		Dirs:          config.ParseCommaSeparated(*dirsFlag),
		RecursiveDirs: config.ParseCommaSeparated(*recursiveFlag),
		ExportDir:     *exportDirFlag,
		PreviewEngine: *engineFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Failed to create directories: %v", err)
	}

	if err := logs.Initialize(cfg.GetFirstDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	ws := workspace.Load(cfg)

	if args := flag.Args(); len(args) > 0 {
		code := cli.Run(args, ws)
		logs.Close()
		os.Exit(code)
	}

	logs.Logger.Println("Starting app in TUI mode")
	p := tea.NewProgram(tui.NewAppModel(ws), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := ws.Watch(ctx, func() { p.Send(tui.NotesChangedMsg{}) }); err != nil {
			logs.Logger.Printf("Watcher stopped: %v", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
