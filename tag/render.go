package tag

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"io"
	"strings"
)

// DefaultIndentWidth is the number of spaces per nesting level used by
// Node.Render.
const DefaultIndentWidth = 2

// Renderer renders tag trees to their canonical text form.
// The zero value renders without any indentation.
type Renderer struct {
	Width uint // spaces per nesting level
}

// DefaultRenderer indents by DefaultIndentWidth.
var DefaultRenderer = Renderer{Width: DefaultIndentWidth}

// Render renders a node at nesting depth `depth`, using the default indentation
// width. Rendering never fails; a nil node renders as "".
func (node *Node) Render(depth uint) string {
	return DefaultRenderer.Render(node, depth)
}

// WriteTo writes the canonical form of a node at depth 0 to w.
// It is part of interface io.WriterTo.
func (node *Node) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := DefaultRenderer.WriteTo(cw, node, 0)
	return cw.n, err
}

// Render renders a node at nesting depth `depth`.
func (r Renderer) Render(node *Node, depth uint) string {
	var sb strings.Builder
	r.render(&sb, node, depth)
	return sb.String()
}

// WriteTo writes the canonical form of a node to w. The only errors
// reported are errors of w.
func (r Renderer) WriteTo(w io.Writer, node *Node, depth uint) error {
	bw := bufio.NewWriter(w)
	r.render(bw, node, depth)
	return bw.Flush()
}

type stringWriter interface {
	WriteString(string) (int, error)
	WriteByte(byte) error
}

// render emits the canonical form of node. Writers used with render either
// never fail (strings.Builder) or remember their first error (bufio.Writer),
// therefore errors are not checked here.
func (r Renderer) render(w stringWriter, node *Node, depth uint) {
	if node == nil {
		return
	}
	indent := r.indent(depth)
	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(node.name)
	for _, a := range node.attributes {
		w.WriteByte(' ')
		w.WriteString(a.Key)
		w.WriteString(`="`)
		w.WriteString(a.Value)
		w.WriteByte('"')
	}
	if node.IsSelfClosing() {
		w.WriteString("/>\n")
		return
	}
	w.WriteString(">\n")
	if node.text != "" {
		w.WriteString(r.indent(depth + 1))
		w.WriteString(node.text)
		w.WriteByte('\n')
	}
	for _, ch := range node.children {
		r.render(w, ch, depth+1)
	}
	w.WriteString(indent)
	w.WriteString("</")
	w.WriteString(node.name)
	w.WriteString(">\n")
}

func (r Renderer) indent(depth uint) string {
	return strings.Repeat(" ", int(r.Width*depth))
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
