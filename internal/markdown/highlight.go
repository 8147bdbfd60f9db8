package markdown

import (
	"bytes"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const highlightStyle = "github"

var codeFormatter = chromahtml.New(
	chromahtml.WithClasses(true),
	chromahtml.PreventSurroundingPre(true),
)

// highlight writes code as chroma class-annotated spans. It reports false when
// the language is unknown, leaving w untouched.
func highlight(w io.Writer, lang, code string) bool {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return false
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return false
	}
	var buf bytes.Buffer
	if err := codeFormatter.Format(&buf, styles.Get(highlightStyle), it); err != nil {
		return false
	}
	_, _ = w.Write(buf.Bytes())
	return true
}

// HighlightCSS returns the stylesheet for the classes emitted in highlighted
// code blocks.
func HighlightCSS() string {
	var buf bytes.Buffer
	if err := codeFormatter.WriteCSS(&buf, styles.Get(highlightStyle)); err != nil {
		return ""
	}
	return buf.String()
}
