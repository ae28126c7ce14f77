/*
Package markup builds trees of markup tags and renders them to an indented
canonical text form.

Overview

A tag tree consists of named nodes, carrying an optional text payload, an
ordered list of attributes and an ordered list of children. Trees are usually
assembled with a fluent builder:

    out, err := builder.New("ul").
        AppendLeaf("li", "hello").
        AppendLeaf("li", "world").
        Render()

resulting in

    <ul>
      <li>
        hello
      </li>
      <li>
        world
      </li>
    </ul>

Sub-packages:

   tag           // tag nodes and the canonical renderer
   builder       // fluent assembly of tag trees
   tags          // construction helpers for common HTML elements
   spec          // specification combinators for filtering items
   codebuilder   // a small builder for class declarations
   dom           // bridge to golang.org/x/net/html
   tag/tagdbg    // debugging output (outline, GraphViz)

Escaping

Neither text payloads nor attribute values are escaped by the canonical
renderer. Clients passing untrusted input containing '<', '>' or '"' will
receive malformed markup. Package dom offers an escaping alternative.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

// Version is the version of this module.
const Version = "v0.3.0"

// TraceKeys lists the tracer keys used by the packages of this module.
// Clients may use these to configure trace levels. No key is a prefix
// of another one, so the keys may be used as nested configuration paths.
func TraceKeys() []string {
	return []string{
		"markup.tag",
		"markup.builder",
		"markup.spec",
		"markup.codebuilder",
		"markup.dom",
		"markup.cli",
	}
}
