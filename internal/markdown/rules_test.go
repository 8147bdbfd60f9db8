package markdown

import (
	"regexp"
	"strings"
	"testing"
)

func TestRuleChain_Emphasis(t *testing.T) {
	got := DefaultRules().Render("**hi** *there*")
	want := `<strong class="font-bold">hi</strong> <em class="italic">there</em>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRuleChain_UnderscoreEmphasis(t *testing.T) {
	got := DefaultRules().Render("__bold__ _soft_")
	want := `<strong class="font-bold">bold</strong> <em class="italic">soft</em>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRuleChain_HeadingThenBreak(t *testing.T) {
	got := DefaultRules().Render("# Title\ntext")
	want := `<h1 class="` + classH1 + `">Title</h1><br />text`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRuleChain_HeadingsMatchLongestFirst(t *testing.T) {
	got := DefaultRules().Render("### Three")
	if !strings.HasPrefix(got, "<h3") {
		t.Errorf("expected h3, got %q", got)
	}
}

func TestRuleChain_ListWrappedOnce(t *testing.T) {
	got := DefaultRules().Render("- a\n- b")
	want := `<ul class="` + classList + `"><li class="ml-4">a</li><br /><li class="ml-4">b</li></ul>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRuleChain_OrderedItemsNotWrapped(t *testing.T) {
	got := DefaultRules().Render("1. one")
	want := `<li class="ml-4">one</li>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRuleChain_ListItemsRunBeforeCheckboxes(t *testing.T) {
	// "- " is consumed by the list item rule, so line-start checkboxes
	// render as plain items.
	got := DefaultRules().Render("- [ ] task")
	if !strings.Contains(got, `<li class="ml-4">[ ] task</li>`) {
		t.Errorf("unexpected output %q", got)
	}

	mid := DefaultRules().Render("todo: - [x] done")
	if !strings.Contains(mid, `checked disabled /> <span class="`+classDone+`">done</span>`) {
		t.Errorf("expected done checkbox, got %q", mid)
	}
}

func TestRuleChain_LinksImagesCode(t *testing.T) {
	r := DefaultRules()

	link := r.Render("[Go](https://go.dev)")
	if !strings.Contains(link, `<a href="https://go.dev" class="`+classLink+`" target="_blank" rel="noopener noreferrer">Go</a>`) {
		t.Errorf("unexpected link %q", link)
	}

	code := r.Render("```fmt.Println```")
	want := `<pre class="` + classPre + `"><code class="` + classPreCode + `">fmt.Println</code></pre>`
	if code != want {
		t.Errorf("expected %q, got %q", want, code)
	}

	inline := r.Render("run `go test`")
	if inline != `run <code class="`+classCode+`">go test</code>` {
		t.Errorf("unexpected inline code %q", inline)
	}
}

func TestRuleChain_BlockquoteAndRule(t *testing.T) {
	got := DefaultRules().Render("> quote\n---")
	want := `<blockquote class="` + classBlockquote + `">quote</blockquote><br /><hr class="` + classRule + `" />`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRuleChain_NoNewlinesRemain(t *testing.T) {
	got := DefaultRules().Render("a\n\nb\n```\ncode\n```\n")
	if strings.Contains(got, "\n") {
		t.Errorf("expected every newline converted, got %q", got)
	}
}

func TestRuleChain_CustomOnceRule(t *testing.T) {
	chain := RuleChain{{Name: "first-x", Pattern: regexp.MustCompile(`x`), Replace: "y", Once: true}}
	if got := chain.Render("xxx"); got != "yxx" {
		t.Errorf("expected only the first match replaced, got %q", got)
	}
}

func TestDefaultRules_ReturnsCopy(t *testing.T) {
	a := DefaultRules()
	a[0].Replace = "changed"
	if DefaultRules()[0].Replace == "changed" {
		t.Error("DefaultRules should return a copy")
	}
}

func TestRuleChain_CRLF(t *testing.T) {
	got := DefaultRules().Render("# Title\r\n> quote\r\n- item")
	if strings.Contains(got, "\r") {
		t.Errorf("expected carriage returns to be dropped, got %q", got)
	}
	for _, want := range []string{
		`<h1 class="` + classH1 + `">Title</h1><br />`,
		`<blockquote class="` + classBlockquote + `">quote</blockquote><br />`,
		`<li class="` + classListItem + `">item</li>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}
