package markdown

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// classRenderer overrides goldmark's default HTML for the nodes that carry
// preview classes. Everything else (paragraphs, tables, strikethrough, text)
// falls through to the default renderer.
type classRenderer struct{}

func (r *classRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	reg.Register(ast.KindList, r.renderList)
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindThematicBreak, r.renderThematicBreak)
	reg.Register(extast.KindTaskCheckBox, r.renderTaskCheckBox)
}

func (r *classRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	tag := "h" + strconv.Itoa(n.Level)
	if !entering {
		_, _ = w.WriteString("</" + tag + ">\n")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("<" + tag)
	if class, ok := headingClasses[n.Level]; ok {
		writeClass(w, class)
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *classRenderer) renderEmphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)
	tag, class := "em", classEm
	if n.Level == 2 {
		tag, class = "strong", classStrong
	}
	if entering {
		_, _ = w.WriteString("<" + tag)
		writeClass(w, class)
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</" + tag + ">")
	}
	return ast.WalkContinue, nil
}

func (r *classRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}
	writeAnchorOpen(w, n.Destination, n.Title)
	return ast.WalkContinue, nil
}

func (r *classRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.AutoLink)
	if !entering {
		return ast.WalkContinue, nil
	}
	url := n.URL(source)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		url = append([]byte("mailto:"), url...)
	}
	writeAnchorOpen(w, url, nil)
	_, _ = w.Write(util.EscapeHTML(n.Label(source)))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

func writeAnchorOpen(w util.BufWriter, dest, title []byte) {
	_, _ = w.WriteString(`<a href="`)
	if !html.IsDangerousURL(dest) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(dest, true)))
	}
	_ = w.WriteByte('"')
	if len(title) > 0 {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(title))
		_ = w.WriteByte('"')
	}
	writeClass(w, classLink)
	_, _ = w.WriteString(` target="_blank" rel="noopener noreferrer">`)
}

func (r *classRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	_, _ = w.WriteString(`<img src="`)
	if !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(plainText(n, source)))
	_ = w.WriteByte('"')
	writeClass(w, classImage)
	_, _ = w.WriteString(" />")
	return ast.WalkSkipChildren, nil
}

func (r *classRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*ast.FencedCodeBlock)
		writeCodeBlock(w, string(n.Language(source)), blockText(n, source))
	}
	return ast.WalkSkipChildren, nil
}

func (r *classRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		writeCodeBlock(w, "", blockText(node, source))
	}
	return ast.WalkSkipChildren, nil
}

func writeCodeBlock(w util.BufWriter, lang, code string) {
	_, _ = w.WriteString(`<pre class="` + classPre + `"><code class="` + classPreCode)
	if lang != "" {
		_, _ = w.WriteString(" language-")
		_, _ = w.Write(util.EscapeHTML([]byte(lang)))
	}
	_, _ = w.WriteString(`">`)
	if !highlight(w, lang, code) {
		_, _ = w.Write(util.EscapeHTML([]byte(code)))
	}
	_, _ = w.WriteString("</code></pre>\n")
}

func (r *classRenderer) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code>")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("<code")
	writeClass(w, classCode)
	_ = w.WriteByte('>')
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		var value []byte
		switch t := c.(type) {
		case *ast.Text:
			value = t.Segment.Value(source)
		case *ast.String:
			value = t.Value
		default:
			continue
		}
		if bytes.HasSuffix(value, []byte("\n")) {
			_, _ = w.Write(util.EscapeHTML(value[:len(value)-1]))
			_ = w.WriteByte(' ')
			continue
		}
		_, _ = w.Write(util.EscapeHTML(value))
	}
	return ast.WalkSkipChildren, nil
}

func (r *classRenderer) renderList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	tag, class := "ul", classList
	if n.IsOrdered() {
		tag, class = "ol", classOrdered
	}
	if !entering {
		_, _ = w.WriteString("</" + tag + ">\n")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("<" + tag)
	if n.IsOrdered() && n.Start != 1 {
		_, _ = w.WriteString(` start="` + strconv.Itoa(n.Start) + `"`)
	}
	writeClass(w, class)
	_, _ = w.WriteString(">\n")
	return ast.WalkContinue, nil
}

func (r *classRenderer) renderListItem(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	task := taskCheckBox(node) != nil
	if !entering {
		if task {
			_, _ = w.WriteString("</span>")
		}
		_, _ = w.WriteString("</li>\n")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("<li")
	if task {
		writeClass(w, classTaskItem)
	} else {
		writeClass(w, classListItem)
	}
	_ = w.WriteByte('>')
	if fc := node.FirstChild(); fc != nil {
		if _, ok := fc.(*ast.TextBlock); !ok {
			_ = w.WriteByte('\n')
		}
	}
	return ast.WalkContinue, nil
}

func (r *classRenderer) renderTaskCheckBox(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*extast.TaskCheckBox)
	if n.IsChecked {
		_, _ = w.WriteString(`<input type="checkbox" class="` + classCheckbox + `" checked disabled /> <span class="` + classDone + `">`)
	} else {
		_, _ = w.WriteString(`<input type="checkbox" class="` + classCheckbox + `" disabled /> <span>`)
	}
	return ast.WalkContinue, nil
}

func (r *classRenderer) renderBlockquote(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<blockquote")
		writeClass(w, classBlockquote)
		_, _ = w.WriteString(">\n")
	} else {
		_, _ = w.WriteString("</blockquote>\n")
	}
	return ast.WalkContinue, nil
}

func (r *classRenderer) renderThematicBreak(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<hr")
		writeClass(w, classRule)
		_, _ = w.WriteString(" />\n")
	}
	return ast.WalkContinue, nil
}

func writeClass(w util.BufWriter, class string) {
	_, _ = w.WriteString(` class="` + class + `"`)
}

// taskCheckBox returns the checkbox leading a list item, if any.
func taskCheckBox(item ast.Node) *extast.TaskCheckBox {
	block := item.FirstChild()
	if block == nil {
		return nil
	}
	cb, _ := block.FirstChild().(*extast.TaskCheckBox)
	return cb
}

func blockText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// plainText concatenates the text under n, used for image alt text.
func plainText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}
