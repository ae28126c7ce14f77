/*
Package dom bridges tag trees to HTML DOM nodes of golang.org/x/net/html.

Overview

The canonical renderer of package tag does not escape anything and writes
every element on lines of its own. Clients needing well-formed, escaped
HTML may convert a tag tree into a DOM and render it with x/net/html:

    var buf bytes.Buffer
    err := dom.Render(&buf, page)

Conversion keeps the order of attributes and children. A text payload of
a tag node becomes the first child of the element, as a text node.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.dom'.
func tracer() tracing.Trace {
	return tracing.Select("markup.dom")
}
