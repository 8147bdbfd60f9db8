package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"jotter/internal/categories"
	"jotter/internal/export"
	"jotter/internal/logs"
	"jotter/internal/markdown"
	"jotter/internal/notes"
	"jotter/internal/search"
	"jotter/internal/templates"
)

type filterFlags struct {
	query     *string
	category  *string
	dateRange *string
	sortBy    *string
	order     *string
}

func (r *runner) addFilterFlags(fs *flag.FlagSet) *filterFlags {
	cfg := r.ws.Config()
	return &filterFlags{
		query:     fs.String("q", "", "Search title, content and tags"),
		category:  fs.String("c", search.CategoryAll, "Category filter"),
		dateRange: fs.String("r", string(search.RangeAll), "Date range: all, today, week, month, year"),
		sortBy:    fs.String("s", cfg.DefaultSort, "Sort by: date, title, category"),
		order:     fs.String("o", cfg.DefaultOrder, "Sort order: asc, desc"),
	}
}

// apply runs the pipeline over the workspace. Positional arguments extend the query.
func (r *runner) apply(f *filterFlags, rest []string) ([]notes.Note, error) {
	opts := search.Options{
		Category:  *f.category,
		DateRange: search.DateRange(*f.dateRange),
		SortBy:    search.SortField(*f.sortBy),
		SortOrder: search.SortOrder(*f.order),
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	query := strings.TrimSpace(strings.Join(append([]string{*f.query}, rest...), " "))
	return search.Apply(r.ws.Notes(), query, opts, r.now()), nil
}

func (r *runner) runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	filters := r.addFilterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return 1
	}

	list, err := r.apply(filters, fs.Args())
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return 1
	}

	if len(list) == 0 {
		fmt.Fprintln(r.out, "No notes found.")
		return 0
	}

	for _, n := range list {
		r.printNote(n)
	}

	fmt.Fprintf(r.out, "\n%d note(s)\n", len(list))
	return 0
}

func (r *runner) runShow(args []string) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	asHTML := fs.Bool("html", false, "Render the note as HTML")
	safe := fs.Bool("safe", false, "Sanitize HTML output")
	raw := fs.Bool("raw", false, "Print the markdown source")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(r.errOut, "Error: note id, title or path required")
		fmt.Fprintln(r.errOut, "Usage: jotter show [--html [--safe]] [--raw] <note>")
		return 1
	}

	n, err := r.findNote(strings.Join(fs.Args(), " "))
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return 1
	}

	if *asHTML {
		engine := r.engine
		if engine == nil {
			engine = markdown.New(r.ws.Config().PreviewEngine)
		}
		if *safe {
			fmt.Fprintln(r.out, markdown.RenderSafe(engine, n.Content))
		} else {
			fmt.Fprintln(r.out, engine.Render(n.Content))
		}
		return 0
	}

	if r.width > 0 && !*raw {
		styled, err := markdown.NewTerminalRenderer("").Render(n.Content, r.width)
		if err == nil {
			fmt.Fprintf(r.out, "%s\n%s\n\n%s\n", n.Title, noteMeta(n), styled)
			return 0
		}
		logs.Logger.Printf("Terminal render failed, printing source: %v", err)
	}

	fmt.Fprintf(r.out, "%s\n%s\n\n%s\n", n.Title, noteMeta(n), n.Content)
	return 0
}

func (r *runner) runExport(args []string) int {
	cfg := r.ws.Config()

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	format := fs.String("f", string(export.JSON), "Format: json, txt, md, pdf")
	toClipboard := fs.Bool("clipboard", false, "Copy to the clipboard instead of saving")
	toStdout := fs.Bool("stdout", false, "Print instead of saving")
	dir := fs.String("dir", cfg.ExportDir, "Directory to write the export to")
	ids := fs.String("ids", "", "Only export these note ids (comma-separated)")
	filters := r.addFilterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return 1
	}

	kind, err := export.ParseKind(*format)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return 1
	}

	list, err := r.apply(filters, fs.Args())
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return 1
	}

	scope, selected := export.ScopeAll, map[string]bool(nil)
	if *ids != "" {
		scope, selected = export.ScopeSelected, make(map[string]bool)
		for _, id := range strings.Split(*ids, ",") {
			if n, err := r.findNote(strings.TrimSpace(id)); err == nil {
				selected[n.ID] = true
			}
		}
	}
	list = export.Select(list, scope, selected)

	e, err := export.Format(list, kind, r.now())
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return 1
	}

	switch {
	case *toStdout:
		_, _ = r.out.Write(e.Content)
		return 0
	case *toClipboard:
		if err := export.CopyToClipboard(e); err != nil {
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(r.out, "Copied %d note(s) as %s\n", len(list), kind)
		return 0
	}

	path, err := export.Save(*dir, e)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(r.out, "Exported %d note(s) to %s\n", len(list), path)
	return 0
}

func (r *runner) runNew(args []string) int {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	templateID := fs.String("t", "blank", "Template id (see jotter templates)")
	title := fs.String("title", "", "Note title (defaults to the template title)")
	category := fs.String("c", "", "Note category")
	tags := fs.String("tags", "", "Tags (comma-separated)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	now := r.now()
	tpl, ok := templates.Get(*templateID, now)
	if !ok {
		fmt.Fprintf(r.errOut, "Error: unknown template %q (have %s)\n", *templateID, strings.Join(templates.IDs(), ", "))
		return 1
	}

	n := tpl.NewNote(now)
	if t := strings.TrimSpace(strings.Join(append([]string{*title}, fs.Args()...), " ")); t != "" {
		n.Title = t
	}
	n.Category = strings.TrimSpace(*category)

	picker := categories.New(r.ws.Labels(), nil, r.ws.Config().MaxCategories)
	for _, tag := range splitList(*tags) {
		picker.Add(tag)
		if err := picker.Select(tag); err != nil {
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
			return 1
		}
	}
	n.Tags = picker.Selected()

	created, err := r.ws.Create(n, now)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error creating note: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.out, "Created: %s\n", created.Title)
	fmt.Fprintf(r.out, "ID: %s\n", created.ID)
	fmt.Fprintf(r.out, "Path: %s\n", created.FilePath)
	return 0
}

func (r *runner) runTag(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.errOut, "Error: note required")
		fmt.Fprintln(r.errOut, "Usage: jotter tag <note> [tag ...] [-r tag ...]")
		return 1
	}

	n, err := r.findNote(args[0])
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return 1
	}

	var add, remove []string
	for i := 1; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "-r" && i+1 < len(args):
			i++
			remove = append(remove, args[i])
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			remove = append(remove, arg[1:])
		default:
			add = append(add, strings.TrimPrefix(arg, "+"))
		}
	}

	picker := categories.New(r.ws.Labels(), n.Tags, r.ws.Config().MaxCategories)
	for _, tag := range remove {
		picker.Remove(tag)
	}
	for _, tag := range add {
		picker.Add(tag)
		if err := picker.Select(strings.TrimSpace(tag)); err != nil {
			if errors.Is(err, categories.ErrLimitReached) {
				fmt.Fprintf(r.errOut, "Error: %v (remove a tag first)\n", err)
			} else {
				fmt.Fprintf(r.errOut, "Error: %v\n", err)
			}
			return 1
		}
	}

	if _, err := r.ws.SetTags(n.ID, picker.Selected()); err != nil {
		fmt.Fprintf(r.errOut, "Error saving tags: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.out, "%s: %s %s\n", n.Title, formatTags(picker.Selected()), picker.Status())
	return 0
}

func (r *runner) runTemplates(args []string) int {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	category := fs.String("c", "all", "Template category")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	now := r.now()
	inCategory := make(map[string]bool)
	for _, t := range templates.ByCategory(*category, now) {
		inCategory[t.ID] = true
	}

	found := 0
	for _, t := range templates.Search(strings.Join(fs.Args(), " "), now) {
		if !inCategory[t.ID] {
			continue
		}
		fmt.Fprintf(r.out, "%-14s %-16s [%s]\n", t.ID, t.Name, t.Category)
		found++
	}
	if found == 0 {
		fmt.Fprintln(r.out, "No templates found.")
	}
	return 0
}

func (r *runner) runCategories(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(r.errOut, "Usage: jotter categories")
		return 1
	}

	all := r.ws.Notes()
	catCount := make(map[string]int)
	tagCount := make(map[string]int)
	for _, n := range all {
		if n.Category != "" {
			catCount[n.Category]++
		}
		for _, tag := range n.Tags {
			tagCount[tag]++
		}
	}

	fmt.Fprintln(r.out, "Categories:")
	for _, c := range r.ws.Categories() {
		fmt.Fprintf(r.out, "  %-20s %d\n", c, catCount[c])
	}

	tags := categories.Labels(tagsOnly(all), nil)
	if len(tags) > 0 {
		fmt.Fprintln(r.out, "Tags:")
		for _, tag := range tags {
			fmt.Fprintf(r.out, "  %-20s %d\n", "#"+tag, tagCount[tag])
		}
	}
	fmt.Fprintf(r.out, "\nMax tags per note: %d\n", r.ws.Config().MaxCategories)
	return 0
}

// findNote resolves a reference by exact id, title or path, then by an id
// prefix of at least four characters.
func (r *runner) findNote(ref string) (notes.Note, error) {
	if n, ok := r.ws.Find(ref); ok {
		return n, nil
	}

	var matches []notes.Note
	if len(ref) >= 4 {
		for _, n := range r.ws.Notes() {
			if strings.HasPrefix(n.ID, ref) {
				matches = append(matches, n)
			}
		}
	}

	if len(matches) == 0 {
		return notes.Note{}, fmt.Errorf("no note found for %q", ref)
	}
	if len(matches) > 1 {
		return notes.Note{}, fmt.Errorf("multiple notes match '%s', please be more specific", ref)
	}
	return matches[0], nil
}

func (r *runner) printNote(n notes.Note) {
	id := n.ID
	if len(id) > 8 {
		id = id[:8]
	}
	fmt.Fprintf(r.out, "[%s] %s  %s\n", id, notes.FormatDate(n.Date), n.Title)

	var meta []string
	if n.Category != "" {
		meta = append(meta, "("+n.Category+")")
	}
	if len(n.Tags) > 0 {
		meta = append(meta, formatTags(n.Tags))
	}
	if len(meta) > 0 {
		fmt.Fprintf(r.out, "           %s\n", strings.Join(meta, " "))
	}
}

func noteMeta(n notes.Note) string {
	parts := []string{notes.FormatDate(n.Date)}
	if n.Category != "" {
		parts = append(parts, n.Category)
	}
	if len(n.Tags) > 0 {
		parts = append(parts, formatTags(n.Tags))
	}
	return strings.Join(parts, " · ")
}

func formatTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func tagsOnly(list []notes.Note) []notes.Note {
	out := make([]notes.Note, len(list))
	for i, n := range list {
		out[i] = notes.Note{Tags: n.Tags}
	}
	return out
}
