/*
Package tags provides construction helpers for common HTML elements.

Instead of having a type per element kind, every helper returns a plain
tag node with name, attributes and text pre-populated:

    page := tags.HTML(nil,
        tags.Head(tags.Title("My Page")),
        tags.Body(
            tags.H1("My Title"),
            tags.P("Some text"),
            tags.Img("link/to/an/image.jpg"),
        ),
    )

All helpers use fixed, valid tag names and therefore cannot fail.
Children are attached by ownership transfer, see tag.Node.AddChild.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tags

import (
	"fmt"

	"github.com/npillmayer/markup/tag"
)

// HTML creates an <html> element. If no attributes are given, the language
// attribute defaults to lang="en".
func HTML(attrs []tag.Attribute, children ...*tag.Node) *tag.Node {
	n := container("html", children)
	if len(attrs) == 0 {
		n.AddAttribute("lang", "en")
	}
	for _, a := range attrs {
		n.AddAttribute(a.Key, a.Value)
	}
	return n
}

// Head creates a <head> element.
func Head(children ...*tag.Node) *tag.Node {
	return container("head", children)
}

// Body creates a <body> element.
func Body(children ...*tag.Node) *tag.Node {
	return container("body", children)
}

// Div creates a <div> element.
func Div(children ...*tag.Node) *tag.Node {
	return container("div", children)
}

// Title creates a <title> element.
func Title(text string) *tag.Node {
	return leaf("title", text)
}

// H creates a heading of a given level. Levels are clamped to 1…6.
func H(level int, text string) *tag.Node {
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	return leaf(fmt.Sprintf("h%d", level), text)
}

// H1 creates a level 1 heading.
func H1(text string) *tag.Node { return H(1, text) }

// H2 creates a level 2 heading.
func H2(text string) *tag.Node { return H(2, text) }

// H3 creates a level 3 heading.
func H3(text string) *tag.Node { return H(3, text) }

// H4 creates a level 4 heading.
func H4(text string) *tag.Node { return H(4, text) }

// H5 creates a level 5 heading.
func H5(text string) *tag.Node { return H(5, text) }

// H6 creates a level 6 heading.
func H6(text string) *tag.Node { return H(6, text) }

// P creates a paragraph.
func P(text string) *tag.Node {
	return leaf("p", text)
}

// Br creates a line break.
func Br() *tag.Node {
	return leaf("br", "")
}

// Hr creates a thematic break.
func Hr() *tag.Node {
	return leaf("hr", "")
}

// Img creates an image element referencing src.
func Img(src string) *tag.Node {
	n := leaf("img", "")
	n.AddAttribute("src", src)
	return n
}

// Abbr creates an abbreviation, with the definition as its title.
func Abbr(acronym, definition string) *tag.Node {
	n := leaf("abbr", acronym)
	n.AddAttribute("title", definition)
	return n
}

// Bdi isolates text which might be formatted in a different direction.
func Bdi(text string) *tag.Node {
	return leaf("bdi", text)
}

// Direction is a text direction for Bdo.
type Direction int

// Text directions.
const (
	LTR Direction = iota // left to right
	RTL                  // right to left
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	}
	return ""
}

// Bdo overrides the current text direction.
func Bdo(dir Direction, text string) *tag.Node {
	n := leaf("bdo", text)
	n.AddAttribute("dir", dir.String())
	return n
}

// Blockquote creates a quotation. If cite is non-empty, it is set as the
// cite attribute.
func Blockquote(text, cite string) *tag.Node {
	n := leaf("blockquote", text)
	if cite != "" {
		n.AddAttribute("cite", cite)
	}
	return n
}

// LI creates a list item.
func LI(text string) *tag.Node {
	return leaf("li", text)
}

// UL creates an unordered list with one item per string.
func UL(items ...string) *tag.Node {
	n := container("ul", nil)
	for _, item := range items {
		attach(n, LI(item))
	}
	return n
}

// --- Helpers ---------------------------------------------------------------

func leaf(name, text string) *tag.Node {
	return tag.Must(tag.NewText(name, text))
}

func container(name string, children []*tag.Node) *tag.Node {
	n := tag.Must(tag.New(name))
	for _, ch := range children {
		attach(n, ch)
	}
	return n
}

// attach adds a child. Fresh nodes cannot produce cycles, so an error here
// is a programming error of the caller (passing an ancestor as a child).
func attach(n *tag.Node, ch *tag.Node) {
	if err := n.AddChild(ch); err != nil {
		panic(err)
	}
}
