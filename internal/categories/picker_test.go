package categories

import (
	"errors"
	"strings"
	"testing"

	"jotter/internal/notes"
	"pgregory.net/rapid"
)

func TestNew_Defaults(t *testing.T) {
	p := New([]string{"Work", " Work ", "", "Ideas"}, []string{"Ideas", "Missing"}, 0)
	if p.Max() != DefaultMax {
		t.Errorf("expected default max %d, got %d", DefaultMax, p.Max())
	}
	if got := strings.Join(p.Catalog(), ","); got != "Work,Ideas" {
		t.Errorf("unexpected catalog %q", got)
	}
	if got := strings.Join(p.Selected(), ","); got != "Ideas" {
		t.Errorf("unexpected selection %q", got)
	}
	if p.Status() != "(1/5)" {
		t.Errorf("unexpected status %q", p.Status())
	}
}

func TestAdd(t *testing.T) {
	p := New(nil, nil, 3)
	if !p.Add("  Travel ") {
		t.Error("expected new category to be added")
	}
	if p.Add("Travel") {
		t.Error("duplicate should be a no-op")
	}
	if p.Add("   ") {
		t.Error("blank should be a no-op")
	}
	if got := p.Catalog(); len(got) != 1 || got[0] != "Travel" {
		t.Errorf("unexpected catalog %v", got)
	}
}

func TestSelect_Limit(t *testing.T) {
	p := New([]string{"a", "b", "c"}, nil, 2)

	if err := p.Select("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Select("a"); err != nil {
		t.Errorf("reselecting should be a no-op, got %v", err)
	}
	if err := p.Select("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CanAddMore() {
		t.Error("expected selection to be full")
	}
	if err := p.Select("c"); !errors.Is(err, ErrLimitReached) {
		t.Errorf("expected ErrLimitReached, got %v", err)
	}
	if err := p.Select("unknown"); err != nil {
		t.Errorf("unknown category should be ignored, got %v", err)
	}
	if got := strings.Join(p.Selected(), ","); got != "a,b" {
		t.Errorf("unexpected selection %q", got)
	}
}

func TestToggle(t *testing.T) {
	p := New([]string{"a", "b"}, nil, 1)

	p.Toggle("a")
	if !p.IsSelected("a") {
		t.Fatal("expected a selected")
	}
	p.Toggle("b")
	if p.IsSelected("b") {
		t.Error("full selection should not accept b")
	}
	p.Toggle("a")
	if p.IsSelected("a") || len(p.Selected()) != 0 {
		t.Error("toggle should deselect a")
	}
}

func TestRemove(t *testing.T) {
	p := New([]string{"a", "b"}, []string{"a", "b"}, 5)
	p.Remove("a")
	p.Remove("zzz")
	if got := strings.Join(p.Selected(), ","); got != "b" {
		t.Errorf("unexpected selection %q", got)
	}
	if len(p.Catalog()) != 2 {
		t.Error("remove should not touch the catalog")
	}
}

func TestSelected_ReturnsCopy(t *testing.T) {
	p := New([]string{"a"}, []string{"a"}, 5)
	s := p.Selected()
	s[0] = "mutated"
	if p.Selected()[0] != "a" {
		t.Error("Selected should return a copy")
	}
}

func TestFilter(t *testing.T) {
	p := New([]string{"Work", "Personal", "Ideas"}, nil, 5)
	if got := p.Filter(""); len(got) != 3 {
		t.Errorf("expected all categories, got %v", got)
	}
	got := p.Filter("wrk")
	if len(got) != 1 || got[0] != "Work" {
		t.Errorf("expected Work, got %v", got)
	}
	if !p.HasExact(" work ") || p.HasExact("wor") {
		t.Error("unexpected exact match result")
	}
}

func TestFromNotes(t *testing.T) {
	list := []notes.Note{{Category: "work"}, {Category: ""}, {Category: "Ideas"}, {Category: "work"}}
	got := FromNotes(list, []string{"Archive", "Ideas"})
	if strings.Join(got, ",") != "Archive,Ideas,work" {
		t.Errorf("unexpected catalog %v", got)
	}
}

func testPicker_Bounded_Properties(t *rapid.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g", " a", ""}
	limit := rapid.IntRange(1, 6).Draw(t, "limit")
	p := New(nil, nil, limit)

	ops := rapid.IntRange(0, 60).Draw(t, "ops")
	for i := 0; i < ops; i++ {
		name := rapid.SampledFrom(names).Draw(t, "name")
		switch rapid.IntRange(0, 3).Draw(t, "op") {
		case 0:
			p.Add(name)
		case 1:
			_ = p.Select(name)
		case 2:
			p.Remove(name)
		case 3:
			p.Toggle(name)
		}

		sel := p.Selected()
		if len(sel) > limit {
			t.Fatalf("selection %v exceeds limit %d", sel, limit)
		}
		seen := map[string]bool{}
		for _, s := range sel {
			if seen[s] {
				t.Fatalf("duplicate %q in selection %v", s, sel)
			}
			seen[s] = true
			if !containsName(p.Catalog(), s) {
				t.Fatalf("selected %q not in catalog %v", s, p.Catalog())
			}
		}
		cat := map[string]bool{}
		for _, c := range p.Catalog() {
			if cat[c] || c == "" {
				t.Fatalf("catalog %v has duplicate or blank entry", p.Catalog())
			}
			cat[c] = true
		}
	}
}

func containsName(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func TestPicker_Bounded_Properties(t *testing.T) {
	rapid.Check(t, testPicker_Bounded_Properties)
}

func TestLabels(t *testing.T) {
	list := []notes.Note{{Category: "Work", Tags: []string{"go", "draft"}}, {Tags: []string{"go"}}}
	got := Labels(list, nil)
	if strings.Join(got, ",") != "draft,go,Work" {
		t.Errorf("unexpected labels %v", got)
	}
}
