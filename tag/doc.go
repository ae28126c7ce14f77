/*
Package tag implements nodes of a markup tree and their canonical rendering.

Nodes

A node represents one markup element: a name, an optional text payload,
an ordered list of attributes and an ordered list of children. Every node
has at most one parent. Attaching a node to a new parent will detach it
from its previous parent first, thus sub-trees are never shared. A node
cannot be attached to itself or to one of its descendents, which makes
cycles impossible.

Nodes behave like values: Clone() creates a deep copy without a parent,
and Equal() compares two (sub-)trees structurally.

Rendering

Rendering is a pure function of a node's state:

    <name key="value" …>
      text
      <child …/>
    </name>

Nodes without text and without children render in self-closing form

    <img src="x.jpg"/>

Indentation width defaults to 2 spaces per level and may be changed by
using a Renderer. No escaping of text or attribute values takes place.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tag

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.tag'.
func tracer() tracing.Trace {
	return tracing.Select("markup.tag")
}

// ErrInvalidArgument is returned (wrapped) if a client violates a precondition,
// e.g. by passing an empty tag name.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrCycle is returned if a client tries to attach a node to itself or to
// one of its descendents.
var ErrCycle = errors.New("attaching node would create a cycle")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("markup.tag: "+msg, msgargs...)
		panic(msg)
	}
}
