package builder

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/markup/tag"
)

// Builder accumulates children into a root tag node.
type Builder struct {
	root *tag.Node
	err  error // first error occured
}

// New creates a builder for a root node with tag name `rootName`.
// If rootName is empty, the builder is created in an error state
// (see Err).
func New(rootName string) *Builder {
	b := &Builder{}
	b.root, b.err = tag.New(rootName)
	if b.err != nil {
		b.err = fmt.Errorf("builder: invalid root: %w", b.err)
		return b
	}
	tracer().Debugf("new builder for <%s>", rootName)
	return b
}

// Err returns the first error which occured while building, if any.
func (b *Builder) Err() error {
	return b.err
}

// AppendLeaf appends a new leaf node with a text payload to the root.
// It returns the builder to allow for chaining.
func (b *Builder) AppendLeaf(name, text string) *Builder {
	return b.AppendLeafWith(name, text)
}

// AppendLeafWith appends a new leaf node with a text payload and a list
// of attributes to the root.
// It returns the builder to allow for chaining.
func (b *Builder) AppendLeafWith(name, text string, attrs ...tag.Attribute) *Builder {
	if b.err != nil {
		return b
	}
	leaf, err := tag.NewText(name, text)
	if err != nil {
		return b.fail(fmt.Errorf("builder: cannot append leaf to <%s>: %w", b.root.Name(), err))
	}
	for _, a := range attrs {
		leaf.AddAttribute(a.Key, a.Value)
	}
	return b.AppendNode(leaf)
}

// AppendNode appends a pre-built sub-tree to the root. Ownership of n is
// transferred to the builder, i.e. n is detached from any previous parent.
// nil-nodes are ignored.
// It returns the builder to allow for chaining.
func (b *Builder) AppendNode(n *tag.Node) *Builder {
	if b.err != nil || n == nil {
		return b
	}
	if err := b.root.AddChild(n); err != nil {
		return b.fail(fmt.Errorf("builder: cannot append <%s>: %w", n.Name(), err))
	}
	tracer().Debugf("appended <%s> to <%s>, #ch=%d", n.Name(), b.root.Name(), b.root.ChildCount())
	return b
}

// Attribute adds an attribute to the root node.
// It returns the builder to allow for chaining.
func (b *Builder) Attribute(key, value string) *Builder {
	if b.err != nil {
		return b
	}
	b.root.AddAttribute(key, value)
	return b
}

// Build returns a copy of the accumulated tree. Subsequent calls to the
// builder will not alter a tree returned earlier.
func (b *Builder) Build() (*tag.Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	tracer().Debugf("building <%s> with %d nodes", b.root.Name(), b.root.Size())
	return b.root.Clone(), nil
}

// Render renders the accumulated tree, using the default indentation.
// It is a shortcut for Build() followed by Render(0).
func (b *Builder) Render() (string, error) {
	return b.RenderWith(tag.DefaultRenderer)
}

// RenderWith renders the accumulated tree with a given renderer.
func (b *Builder) RenderWith(r tag.Renderer) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return r.Render(b.root, 0), nil
}

// Node returns the root node held by the builder, without copying it.
// Clients must treat the returned node as read-only; use Build to get an
// independent tree.
func (b *Builder) Node() *tag.Node {
	return b.root
}

func (b *Builder) fail(err error) *Builder {
	tracer().Errorf(err.Error())
	b.err = err
	return b
}
