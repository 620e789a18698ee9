package mdpdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatterYAML(t *testing.T) {
	src := []byte("---\ntitle: Masterclass\nauthor: Ada Lovelace\nsummary: Engines\nkeywords: [go, pdf]\ntags: [docs]\n---\n# Body\n")
	meta, body, err := ParseFrontMatter(src)
	require.NoError(t, err)
	assert.Equal(t, Metadata{
		Title:    "Masterclass",
		Author:   "Ada Lovelace",
		Subject:  "Engines",
		Keywords: []string{"go", "pdf", "docs"},
	}, meta)
	assert.Equal(t, "# Body\n", string(body))
}

func TestParseFrontMatterTOML(t *testing.T) {
	src := []byte("+++\ntitle = \"Toml\"\nsubject = \"S\"\n+++\ntext\n")
	meta, body, err := ParseFrontMatter(src)
	require.NoError(t, err)
	assert.Equal(t, "Toml", meta.Title)
	assert.Equal(t, "S", meta.Subject)
	assert.Equal(t, "text\n", string(body))
}

func TestParseFrontMatterAbsent(t *testing.T) {
	src := []byte("# Title\n\nplain\n")
	meta, body, err := ParseFrontMatter(src)
	require.NoError(t, err)
	assert.Equal(t, Metadata{}, meta)
	assert.Equal(t, string(src), string(body))
}

func TestParseFrontMatterInvalid(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	require.Error(t, err)
}
