/*
Package spec implements specification combinators to filter collections.

A specification is a predicate over items of type T. Specifications form a
small expression tree of leaf tests and boolean combinators:

    green := spec.Named("green", func(p Product) bool { return p.Color == Green })
    large := spec.Named("large", func(p Product) bool { return p.Size == Large })
    bigAndGreen := spec.And(green, large)
    selection := spec.Filter(products, bigAndGreen)

New criteria are added by creating new leaf specifications; neither the
combinators nor Filter have to be changed for that.

Evaluation is left to right with the usual short-circuit semantics of
Go's && and ||.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package spec

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.spec'.
func tracer() tracing.Trace {
	return tracing.Select("markup.spec")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("markup.spec: "+msg, msgargs...)
		panic(msg)
	}
}
