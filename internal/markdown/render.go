package markdown

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"jotter/internal/config"
	"jotter/internal/logs"
)

// Engine turns note markdown into preview HTML.
type Engine interface {
	Render(markdown string) string
}

// New returns the engine named by the preview_engine setting. Unknown names
// get the AST renderer.
func New(name string) Engine {
	if name == config.EngineRules {
		return DefaultRules()
	}
	return NewASTRenderer()
}

var defaultEngine = sync.OnceValue(func() Engine { return NewASTRenderer() })

// Render converts markdown with the default engine.
func Render(markdown string) string {
	return defaultEngine().Render(markdown)
}

// ASTRenderer parses markdown into a goldmark AST (GFM flavour) and renders it
// with the preview classes. Raw HTML in the input is omitted.
type ASTRenderer struct {
	md goldmark.Markdown
}

func NewASTRenderer() *ASTRenderer {
	return &ASTRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithXHTML(),
				renderer.WithNodeRenderers(util.Prioritized(&classRenderer{}, 100)),
			),
		),
	}
}

// Render converts markdown to HTML. Empty input renders to the empty string.
func (r *ASTRenderer) Render(markdown string) string {
	if markdown == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		logs.Logger.Printf("markdown: render failed: %v", err)
		return string(util.EscapeHTML([]byte(markdown)))
	}
	return buf.String()
}
