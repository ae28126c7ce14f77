package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/tag"
	"github.com/npillmayer/markup/tag/tagdbg"
)

// Output formats.
const (
	formatCanonical = "canonical"
	formatHTML      = "html"
	formatOutline   = "outline"
	formatDot       = "dot"
)

func validFormat(f string) bool {
	switch f {
	case formatCanonical, formatHTML, formatOutline, formatDot:
		return true
	}
	return false
}

// write outputs a tag tree in the format selected by s.
func write(w io.Writer, n *tag.Node, s settings) error {
	switch s.Format {
	case formatCanonical:
		return tag.Renderer{Width: uint(s.Indent)}.WriteTo(w, n, 0)
	case formatHTML:
		if err := dom.Render(w, n); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case formatOutline:
		_, err := io.WriteString(w, tagdbg.Outline(n))
		return err
	case formatDot:
		return tagdbg.ToGraphViz(n, w)
	}
	return fmt.Errorf("unknown output format %q", s.Format)
}
