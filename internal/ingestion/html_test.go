package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<!DOCTYPE html><html><body>hi</body></html>"))
	assert.True(t, LooksLikeHTML("<div>Senior Engineer</div>"))
	assert.False(t, LooksLikeHTML("Senior Engineer at Acme\nRequirements:\n- Go"))
}

func TestStripHTML_ExtractsTextAndBullets(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<h1>Senior Software Engineer</h1>
		<p>Join our platform team.</p>
		<ul><li>Build Go services</li><li>Own deployments</li></ul>
		<footer>© Acme</footer>
	</body></html>`

	text, err := StripHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Software Engineer")
	assert.Contains(t, text, "Join our platform team.")
	assert.Contains(t, text, "• Build Go services")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "© Acme")
}

func TestStripHTML_RemovesScripts(t *testing.T) {
	text, err := StripHTML(`<body><script>alert(1)</script><p>Visible content</p></body>`)
	require.NoError(t, err)

	assert.Contains(t, text, "Visible content")
	assert.NotContains(t, text, "alert")
}
