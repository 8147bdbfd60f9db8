package markdown

import (
	"regexp"
	"strings"
)

// Rule is one substitution of a RuleChain. A rule with Once set replaces only
// its first match.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
	Once    bool
}

// RuleChain renders markdown by applying each rule in order to the output of
// the previous one. Later rules see markup produced by earlier rules, and the
// final rule turns every remaining newline into <br />.
//
// The output is not sanitized. Pass it through Sanitize before embedding it
// anywhere untrusted input matters.
type RuleChain []Rule

func rule(name, pattern, replace string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern), Replace: replace}
}

var defaultRules = RuleChain{
	rule("h3", `(?im)^### (.*)$`, `<h3 class="`+classH3+`">${1}</h3>`),
	rule("h2", `(?im)^## (.*)$`, `<h2 class="`+classH2+`">${1}</h2>`),
	rule("h1", `(?im)^# (.*)$`, `<h1 class="`+classH1+`">${1}</h1>`),

	rule("bold", `\*\*(.*?)\*\*`, `<strong class="`+classStrong+`">${1}</strong>`),
	rule("bold-underscore", `__(.*?)__`, `<strong class="`+classStrong+`">${1}</strong>`),
	rule("italic", `\*(.*?)\*`, `<em class="`+classEm+`">${1}</em>`),
	rule("italic-underscore", `_(.*?)_`, `<em class="`+classEm+`">${1}</em>`),

	rule("link", `\[([^\]]+)\]\(([^)]+)\)`,
		`<a href="${2}" class="`+classLink+`" target="_blank" rel="noopener noreferrer">${1}</a>`),
	rule("image", `!\[([^\]]*)\]\(([^)]+)\)`, `<img src="${2}" alt="${1}" class="`+classImage+`" />`),

	rule("code-block", "```((?s).*?)```",
		`<pre class="`+classPre+`"><code class="`+classPreCode+`">${1}</code></pre>`),
	rule("inline-code", "`([^`]+)`", `<code class="`+classCode+`">${1}</code>`),

	rule("list-item", `(?im)^- (.*)$`, `<li class="`+classListItem+`">${1}</li>`),
	{
		Name:    "list-wrap",
		Pattern: regexp.MustCompile(`(?s)(<li class="` + classListItem + `">.*</li>)`),
		Replace: `<ul class="` + classList + `">${1}</ul>`,
		Once:    true,
	},
	rule("ordered-item", `(?im)^\d+\. (.*)$`, `<li class="`+classListItem+`">${1}</li>`),

	rule("todo", `(?im)- \[ \] (.*)$`,
		`<li class="`+classTaskItem+`"><input type="checkbox" class="`+classCheckbox+`" disabled /> <span>${1}</span></li>`),
	rule("done", `(?im)- \[x\] (.*)$`,
		`<li class="`+classTaskItem+`"><input type="checkbox" class="`+classCheckbox+`" checked disabled /> <span class="`+classDone+`">${1}</span></li>`),

	rule("blockquote", `(?im)^> (.*)$`, `<blockquote class="`+classBlockquote+`">${1}</blockquote>`),
	rule("hr", `(?im)^---$`, `<hr class="`+classRule+`" />`),

	rule("line-break", `\n`, `<br />`),
}

// DefaultRules returns the standard preview rule chain.
func DefaultRules() RuleChain {
	return append(RuleChain(nil), defaultRules...)
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Render applies the chain. Line endings are normalized to \n first. Empty
// input renders to the empty string.
func (c RuleChain) Render(markdown string) string {
	if markdown == "" {
		return ""
	}
	out := lineEndings.Replace(markdown)
	for _, r := range c {
		out = r.apply(out)
	}
	return out
}

func (r Rule) apply(s string) string {
	if !r.Once {
		return r.Pattern.ReplaceAllString(s, r.Replace)
	}
	m := r.Pattern.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	var dst []byte
	dst = r.Pattern.ExpandString(dst, r.Replace, s, m)
	return s[:m[0]] + string(dst) + s[m[1]:]
}
