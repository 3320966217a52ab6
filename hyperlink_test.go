package wikisum_test

import (
	"testing"

	"github.com/fwojciec/wikisum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBaseURL  = "https://example.org/wiki/X"
	testWikiHost = "https://en.wikipedia.org"
)

func TestExtractHyperlinks(t *testing.T) {
	t.Parallel()

	t.Run("renders footnotes against the page URL", func(t *testing.T) {
		t.Parallel()

		links := wikisum.ExtractHyperlinks(`<a href="#cite_note-1">[1]</a>`, testBaseURL, testWikiHost)

		require.Len(t, links, 1)
		assert.Equal(t, wikisum.LinkFootnote, links[0].Kind)
		assert.Equal(t, "https://example.org/wiki/X#cite_note-1", links[0].URL)
		assert.Equal(t, " *Footnote  https://example.org/wiki/X#cite_note-1", links[0].String())
	})

	t.Run("keeps footnote label text outside brackets", func(t *testing.T) {
		t.Parallel()

		body := `<sup class="reference"><a href="#cite_note-Livy-3"><span class="cite-bracket">[</span>3<span class="cite-bracket">]</span></a></sup>`

		links := wikisum.ExtractHyperlinks(body, testBaseURL, testWikiHost)

		require.Len(t, links, 1)
		assert.Equal(t, wikisum.LinkFootnote, links[0].Kind)
		assert.Contains(t, links[0].Label, "3")
		assert.Equal(t, "https://example.org/wiki/X#cite_note-Livy-3", links[0].URL)
	})

	t.Run("skips anchors with an empty label", func(t *testing.T) {
		t.Parallel()

		links := wikisum.ExtractHyperlinks(`<a href="/wiki/Y" id="anchor"></a>`, testBaseURL, testWikiHost)

		assert.Empty(t, links)
	})

	t.Run("renders images with a fixed marker", func(t *testing.T) {
		t.Parallel()

		body := `<a href="/wiki/File:Colosseum.jpg" class="mw-file-description"><img src="//upload.wikimedia.org/c.jpg" width="220" /></a>`

		links := wikisum.ExtractHyperlinks(body, testBaseURL, testWikiHost)

		require.Len(t, links, 1)
		assert.Equal(t, wikisum.LinkImage, links[0].Kind)
		assert.Empty(t, links[0].Label)
		assert.Equal(t, "[ IMAGE FILE ] https://en.wikipedia.org/wiki/File:Colosseum.jpg", links[0].String())
	})

	t.Run("renders page links with their label", func(t *testing.T) {
		t.Parallel()

		links := wikisum.ExtractHyperlinks(`<a href="/wiki/Rome" title="Rome">Rome</a>`, testBaseURL, testWikiHost)

		require.Len(t, links, 1)
		assert.Equal(t, wikisum.LinkPage, links[0].Kind)
		assert.Equal(t, "[Rome] https://en.wikipedia.org/wiki/Rome", links[0].String())
	})

	t.Run("strips markup from labels", func(t *testing.T) {
		t.Parallel()

		links := wikisum.ExtractHyperlinks(`<a href="/wiki/Aeneid" title="Aeneid"><i>Aeneid</i></a>`, testBaseURL, testWikiHost)

		require.Len(t, links, 1)
		assert.Equal(t, "Aeneid", links[0].Label)
	})

	t.Run("prefers footnote over image", func(t *testing.T) {
		t.Parallel()

		links := wikisum.ExtractHyperlinks(`<a href="#cite_note-2"><img src="x.png" /></a>`, testBaseURL, testWikiHost)

		require.Len(t, links, 1)
		assert.Equal(t, wikisum.LinkFootnote, links[0].Kind)
	})

	t.Run("keeps document order and repeats", func(t *testing.T) {
		t.Parallel()

		body := `<p><a href="/wiki/Tiber">Tiber</a> and <a href="/wiki/Rome">Rome</a>, then <a href="/wiki/Tiber">Tiber</a> again.</p>`

		links := wikisum.ExtractHyperlinks(body, testBaseURL, testWikiHost)

		require.Len(t, links, 3)
		assert.Equal(t, "Tiber", links[0].Label)
		assert.Equal(t, "Rome", links[1].Label)
		assert.Equal(t, "Tiber", links[2].Label)
	})

	t.Run("skips an anchor that is not closed on its line", func(t *testing.T) {
		t.Parallel()

		body := "<a href=\"/wiki/Broken\">Broken\n<a href=\"/wiki/Ok\">Ok</a>"

		links := wikisum.ExtractHyperlinks(body, testBaseURL, testWikiHost)

		require.Len(t, links, 1)
		assert.Equal(t, "Ok", links[0].Label)
	})

	t.Run("returns nothing for a body without anchors", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wikisum.ExtractHyperlinks("<p>plain</p>", testBaseURL, testWikiHost))
	})
}

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	body := `<a href="/wiki/K%C3%B6ln">Köln</a> <a href="#cite_note-4">[4]</a>`

	lines := wikisum.ExtractLinks(body, "https://de.wikipedia.org/wiki/Rhein", "de")

	assert.Equal(t, []string{
		"[Köln] https://de.wikipedia.org/wiki/K%C3%B6ln",
		" *Footnote  https://de.wikipedia.org/wiki/Rhein#cite_note-4",
	}, lines)
}
