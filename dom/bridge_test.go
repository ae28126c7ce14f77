package dom

import (
	"bytes"
	"testing"

	"github.com/npillmayer/markup/tag"
	"github.com/npillmayer/markup/tags"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestFromTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	a := tag.Must(tag.NewText("a", "link"))
	a.AddAttribute("href", "/x")
	a.AddAttribute("class", "one")
	p := tag.Must(tag.NewText("p", "see"))
	require.NoError(t, p.AddChild(a))
	//
	h := FromTag(p)
	assert.Equal(t, html.ElementNode, h.Type)
	assert.Equal(t, atom.P, h.DataAtom)
	require.NotNil(t, h.FirstChild)
	assert.Equal(t, html.TextNode, h.FirstChild.Type)
	assert.Equal(t, "see", h.FirstChild.Data)
	ha := h.FirstChild.NextSibling
	require.NotNil(t, ha)
	assert.Equal(t, []html.Attribute{{Key: "href", Val: "/x"}, {Key: "class", Val: "one"}}, ha.Attr)
	assert.Equal(t, 2, ElementCount(h))
	assert.Nil(t, FromTag(nil))
}

func TestRenderEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.dom")
	defer teardown()
	//
	n := tag.Must(tag.NewText("p", "a < b"))
	n.AddAttribute("title", `say "hi"`)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, n))
	assert.Equal(t, `<p title="say &#34;hi&#34;">a &lt; b</p>`, buf.String())
}

func TestRenderPage(t *testing.T) {
	page := tags.HTML(nil, tags.Body(tags.H1("Title"), tags.Img("x.jpg")))
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page))
	assert.Equal(t, `<html lang="en"><body><h1>Title</h1><img src="x.jpg"/></body></html>`, buf.String())
}

func TestRenderVoidElementWithText(t *testing.T) {
	br := tag.Must(tag.NewText("br", "illegal"))
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, br))
}
