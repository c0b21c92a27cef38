// Package rendering turns a validated resume record plus a template id into
// a complete LaTeX document string. Every user-supplied value is escaped
// before interpolation so the output is always syntactically valid LaTeX.
package rendering

import "strings"

// latexEscaper rewrites the LaTeX special characters \ { } $ & % # ^ _ ~ in
// a single pass, so replacement output is never re-escaped.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes the LaTeX special characters in text.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexEscaper.Replace(text)
}

// escapeAll maps EscapeLaTeX over a slice.
func escapeAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = EscapeLaTeX(s)
	}
	return out
}
