package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_PlainTextUnchanged(t *testing.T) {
	text := "Shipped the billing service on time"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestEscapeLaTeX_SpecialCharacters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`back\slash`, `back\textbackslash{}slash`},
		{"a{b}c", `a\{b\}c`},
		{"cost $100", `cost \$100`},
		{"A & B", `A \& B`},
		{"100% done", `100\% done`},
		{"issue #12", `issue \#12`},
		{"x^2", `x\textasciicircum{}2`},
		{"snake_case", `snake\_case`},
		{"approx ~5ms", `approx \textasciitilde{}5ms`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLaTeX(tt.in), tt.in)
	}
}

func TestEscapeLaTeX_ReplacementNotReEscaped(t *testing.T) {
	// The backslash introduced by escaping "&" must not itself be escaped.
	assert.Equal(t, `\&\%`, EscapeLaTeX("&%"))
}
