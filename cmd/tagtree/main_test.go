package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	appTag = "" // do not pick up configuration files of the user
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(trace2go.Teardown)
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderListDemo(t *testing.T) {
	out, err := run(t, "render", "list")
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n  <li>\n    hello\n  </li>\n  <li>\n    world\n  </li>\n</ul>\n", out)
}

func TestRenderIndentFlag(t *testing.T) {
	out, err := run(t, "render", "list", "--indent", "4")
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n    <li>\n        hello\n    </li>\n    <li>\n        world\n    </li>\n</ul>\n", out)
}

func TestRenderHTMLFormat(t *testing.T) {
	out, err := run(t, "render", "list", "--format", "html")
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>hello</li><li>world</li></ul>\n", out)
}

func TestRenderOtherFormats(t *testing.T) {
	out, err := run(t, "render", "page", "--format", "outline")
	require.NoError(t, err)
	assert.Contains(t, out, "<html>")
	out, err = run(t, "render", "page", "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph g {")
	_, err = run(t, "render", "page", "--format", "pdf")
	assert.Error(t, err)
}

func TestRenderUnknownDemo(t *testing.T) {
	_, err := run(t, "render", "nosuchdemo")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "list ")
	assert.Contains(t, out, "page ")
	assert.Contains(t, out, "formatting ")
}

func TestProducts(t *testing.T) {
	out, err := run(t, "products", "--color", "green", "--size", "large")
	require.NoError(t, err)
	expected := "<ul class=\"products\">\n" +
		"  <li data-color=\"green\" data-size=\"large\">\n    Tree\n  </li>\n" +
		"</ul>\n"
	assert.Equal(t, expected, out)
}

func TestProductsAny(t *testing.T) {
	s, err := productSpec("blue", "small", true)
	require.NoError(t, err)
	var names []string
	for _, p := range catalog {
		if s.IsSatisfied(p) {
			names = append(names, p.Name)
		}
	}
	assert.Equal(t, []string{"Apple", "House", "Cherry"}, names)
	_, err = productSpec("purple", "", false)
	assert.Error(t, err)
	all, err := productSpec("", "", false)
	require.NoError(t, err)
	assert.True(t, all.IsSatisfied(catalog[0]))
}

func TestProductsEmptySelection(t *testing.T) {
	out, err := run(t, "products", "--color", "blue", "--size", "small")
	require.NoError(t, err)
	assert.Equal(t, "<ul class=\"products\"/>\n", out)
}

func TestClass(t *testing.T) {
	out, err := run(t, "class", "Person", "name:string", "age:int")
	require.NoError(t, err)
	assert.Equal(t, "class Person\n{\n  string name;\n  int age;\n};\n", out)
	_, err = run(t, "class", "Person", "name")
	assert.Error(t, err)
	_, err = run(t, "class", "Person", ":int")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tagtree v")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagtree.nt")
	conf := "render:\n    indent: 3\n    format: canonical\n"
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o644))
	out, err := run(t, "render", "list", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n   <li>\n      hello\n   </li>\n   <li>\n      world\n   </li>\n</ul>\n", out)
	// flags take precedence over the configuration file
	out, err = run(t, "render", "list", "--config", path, "--indent", "0")
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n<li>\nhello\n</li>\n<li>\nworld\n</li>\n</ul>\n", out)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "render", "list", "--config", filepath.Join(t.TempDir(), "missing.nt"))
	assert.Error(t, err)
}

func TestNegativeIndent(t *testing.T) {
	_, err := run(t, "render", "list", "--indent", "-1")
	assert.Error(t, err)
}
