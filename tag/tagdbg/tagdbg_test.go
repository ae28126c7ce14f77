package tagdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/markup/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *tag.Node {
	li := tag.Must(tag.NewText("li", "hello"))
	li.AddAttribute("class", "x")
	return tag.Must(tag.NewContainer("ul", li, tag.Must(tag.NewText("li", "world"))))
}

func TestOutline(t *testing.T) {
	out := Outline(sample())
	t.Logf("outline =\n%s", out)
	assert.True(t, strings.HasPrefix(out, "<ul>\n"))
	assert.Contains(t, out, `[class="x"]  <li>`)
	assert.Contains(t, out, `"hello"`)
	assert.Contains(t, out, `"world"`)
	assert.Equal(t, "", Outline(nil))
}

func TestToGraphViz(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(sample(), &buf))
	dot := buf.String()
	t.Logf("dot =\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "node00001 -> node00002 [weight=1]")
	assert.Contains(t, dot, "node00001 -> node00003 [weight=1]")
	assert.Contains(t, dot, `xlabel="class=\"x\""`)
	assert.Equal(t, 3, strings.Count(dot, "shape=ellipse"))
	assert.Equal(t, 2, strings.Count(dot, "shape=box"))
}

func TestShortText(t *testing.T) {
	assert.Equal(t, "\"a␣b\"", shortText("a b"))
	assert.Equal(t, `"0123456789..."`, shortText("0123456789abc"))
}
