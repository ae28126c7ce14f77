/*
Package builder implements a fluent builder for tag trees.

A Builder wraps a root tag node and offers chainable operations to append
children to it:

    b := builder.New("ul").
        AppendLeaf("li", "hello").
        AppendLeaf("li", "world")
    ul, err := b.Build()

As calls are chained, errors cannot be returned from every step. Instead
the first precondition violation is remembered and reported by Err(),
Build() and Render(). Once an error occurred, subsequent appends are
no-ops.

Build() returns a deep copy of the accumulated tree. The builder stays
usable afterwards, and appending further children will not change trees
built earlier.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.builder'.
func tracer() tracing.Trace {
	return tracing.Select("markup.builder")
}
