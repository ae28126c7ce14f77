package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"

	"github.com/npillmayer/markup/tag"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromTag converts a tag tree into an HTML element node. The tag tree is
// not modified. FromTag returns nil for a nil node.
func FromTag(n *tag.Node) *html.Node {
	if n == nil {
		return nil
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Name(),
		DataAtom: atom.Lookup([]byte(n.Name())),
	}
	for _, a := range n.Attributes() {
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	if n.Text() != "" {
		h.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text()})
	}
	for _, ch := range n.Children() {
		h.AppendChild(FromTag(ch))
	}
	return h
}

// Render writes a tag tree as compact HTML to w. In contrast to the
// canonical rendering of package tag, text and attribute values are escaped.
//
// Render fails for void elements (e.g., <img>) carrying text or children.
func Render(w io.Writer, n *tag.Node) error {
	if n == nil {
		return nil
	}
	h := FromTag(n)
	tracer().Debugf("rendering DOM for <%s> with %d elements", n.Name(), ElementCount(h))
	if err := html.Render(w, h); err != nil {
		tracer().Errorf("cannot render <%s>: %v", n.Name(), err)
		return fmt.Errorf("dom: rendering <%s>: %w", n.Name(), err)
	}
	return nil
}

// ElementCount counts the element nodes of the DOM sub-tree rooted at h.
func ElementCount(h *html.Node) int {
	if h == nil {
		return 0
	}
	cnt := 0
	if h.Type == html.ElementNode {
		cnt = 1
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		cnt += ElementCount(c)
	}
	return cnt
}
