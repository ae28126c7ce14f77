package builder_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/markup/builder"
	"github.com/npillmayer/markup/tag"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRendersList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.builder")
	defer teardown()
	//
	out, err := builder.New("ul").AppendLeaf("li", "hello").AppendLeaf("li", "world").Render()
	require.NoError(t, err)
	expected := "<ul>\n  <li>\n    hello\n  </li>\n  <li>\n    world\n  </li>\n</ul>\n"
	assert.Equal(t, expected, out)
}

func TestBuilderEmptyRoot(t *testing.T) {
	out, err := builder.New("div").Render()
	require.NoError(t, err)
	assert.Equal(t, "<div/>\n", out)
}

func TestBuildIsIndependentSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.builder")
	defer teardown()
	//
	b := builder.New("ul").AppendLeaf("li", "one")
	snap, err := b.Build()
	require.NoError(t, err)
	before := snap.Render(0)
	b.AppendLeaf("li", "two").Attribute("class", "list")
	assert.Equal(t, before, snap.Render(0), "snapshot must not change after further appends")
	assert.Equal(t, 1, snap.ChildCount())
	later, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, later.ChildCount())
	assert.False(t, tag.Equal(snap, later))
}

func TestBuilderRenderMatchesBuild(t *testing.T) {
	b := builder.New("ol").AppendLeafWith("li", "x", tag.A("value", "3"))
	built, err := b.Build()
	require.NoError(t, err)
	out, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, built.Render(0), out)
}

func TestBuilderErrorsAreSticky(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.builder")
	defer teardown()
	//
	b := builder.New("ul").AppendLeaf("", "broken").AppendLeaf("li", "ignored")
	require.Error(t, b.Err())
	assert.True(t, errors.Is(b.Err(), tag.ErrInvalidArgument))
	_, err := b.Build()
	assert.Equal(t, b.Err(), err)
	_, err = b.Render()
	assert.Equal(t, b.Err(), err)
	assert.Equal(t, 0, b.Node().ChildCount())
}

func TestBuilderEmptyRootName(t *testing.T) {
	b := builder.New("")
	assert.True(t, errors.Is(b.Err(), tag.ErrInvalidArgument))
	b.AppendLeaf("li", "x").Attribute("k", "v")
	_, err := b.Build()
	assert.Error(t, err)
}

func TestAppendNodeTransfersOwnership(t *testing.T) {
	sub := tag.Must(tag.NewContainer("ul", tag.Must(tag.NewText("li", "nested"))))
	other := tag.Must(tag.NewContainer("section", sub))
	b := builder.New("div").AppendNode(sub).AppendNode(nil)
	require.NoError(t, b.Err())
	assert.Equal(t, 0, other.ChildCount())
	assert.Same(t, b.Node(), sub.Parent())
	out, err := b.RenderWith(tag.Renderer{Width: 1})
	require.NoError(t, err)
	assert.Equal(t, "<div>\n <ul>\n  <li>\n   nested\n  </li>\n </ul>\n</div>\n", out)
}

func TestAppendNodeCycle(t *testing.T) {
	b := builder.New("div")
	b.AppendNode(b.Node())
	assert.True(t, errors.Is(b.Err(), tag.ErrCycle))
}

func TestBuilderRootAttributes(t *testing.T) {
	out, err := builder.New("img").Attribute("src", "x.jpg").Attribute("alt", "").Render()
	require.NoError(t, err)
	assert.Equal(t, "<img src=\"x.jpg\" alt=\"\"/>\n", out)
}
