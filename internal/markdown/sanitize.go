package markdown

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var previewPolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
})

// Sanitize strips anything from rendered HTML that is not part of the preview
// markup: scripts, event handlers, javascript: URLs and the like.
func Sanitize(html string) string {
	return previewPolicy().Sanitize(html)
}

// RenderSafe renders markdown with engine and sanitizes the result.
func RenderSafe(engine Engine, markdown string) string {
	return Sanitize(engine.Render(markdown))
}
