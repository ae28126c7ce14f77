package tag

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Attribute is a key/value pair of a tag. Keys are not required to be unique.
type Attribute struct {
	Key   string
	Value string
}

// A is a shortcut to create an attribute.
func A(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s=%q", a.Key, a.Value)
}

// Node is the base type our markup trees are built of.
type Node struct {
	name       string      // tag name, never empty
	text       string      // optional text payload
	attributes []Attribute // attributes in insertion order
	children   []*Node     // owned children in insertion order
	parent     *Node       // parent node of this node
}

// New creates an empty node with a given tag name.
// An empty name is rejected with an error wrapping ErrInvalidArgument.
func New(name string) (*Node, error) {
	if name == "" {
		tracer().Errorf("tag: cannot create node with empty name")
		return nil, fmt.Errorf("tag: node name must not be empty: %w", ErrInvalidArgument)
	}
	return &Node{name: name}, nil
}

// NewText creates a leaf node carrying a text payload.
func NewText(name string, text string) (*Node, error) {
	n, err := New(name)
	if err != nil {
		return nil, err
	}
	n.text = text
	return n, nil
}

// NewContainer creates a node without a text payload, holding a list of children.
// Children are attached to the new node, i.e. they are detached from any
// previous parent. nil-children are skipped.
func NewContainer(name string, children ...*Node) (*Node, error) {
	n, err := New(name)
	if err != nil {
		return nil, err
	}
	for _, ch := range children {
		if err := n.AddChild(ch); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Must is a helper that wraps a call to a function returning (*Node, error)
// and panics if the error is non-nil. It is intended for use with tag names
// known at compile time.
//
//    ul := tag.Must(tag.NewContainer("ul", li1, li2))
//
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

func (node *Node) String() string {
	return node.Render(0)
}

// Name returns the tag name of a node.
func (node *Node) Name() string {
	return node.name
}

// Text returns the text payload of a node, or "" if none is set.
func (node *Node) Text() string {
	return node.text
}

// SetText replaces the text payload of a node.
func (node *Node) SetText(text string) {
	node.text = text
}

// AddAttribute appends an attribute. There is no check for duplicate keys
// and no validation of the key format.
func (node *Node) AddAttribute(key, value string) {
	node.attributes = append(node.attributes, Attribute{Key: key, Value: value})
}

// Attributes returns a copy of the attributes of a node, in insertion order.
func (node *Node) Attributes() []Attribute {
	if len(node.attributes) == 0 {
		return nil
	}
	attrs := make([]Attribute, len(node.attributes))
	copy(attrs, node.attributes)
	return attrs
}

// Attribute returns the value of the first attribute with a given key.
func (node *Node) Attribute(key string) (string, bool) {
	for _, a := range node.attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// AddChild appends a child node. The child is detached from its previous
// parent, if any, and connected to this node as its parent.
// nil-children are ignored.
//
// Attaching a node to itself or to one of its descendents results in an
// error wrapping ErrCycle.
func (node *Node) AddChild(ch *Node) error {
	if ch == nil {
		return nil
	}
	for anc := node; anc != nil; anc = anc.parent {
		if anc == ch {
			tracer().Errorf("tag: refusing to attach <%s> below itself", ch.name)
			return fmt.Errorf("tag: cannot attach <%s> to <%s>: %w", ch.name, node.name, ErrCycle)
		}
	}
	ch.Isolate()
	node.children = append(node.children, ch)
	ch.parent = node
	return nil
}

// Parent returns the parent node or nil (for the root of a tree).
func (node *Node) Parent() *Node {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node) Isolate() *Node {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	i := p.IndexOfChild(node)
	assertThat(i >= 0, "node <%s> not found among children of its parent", node.name)
	p.children = append(p.children[:i], p.children[i+1:]...)
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node) ChildCount() int {
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node) Child(n int) (*Node, bool) {
	if n < 0 || n >= len(node.children) {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node.
// The slice is a copy, the child nodes are not.
func (node *Node) Children() []*Node {
	if len(node.children) == 0 {
		return nil
	}
	children := make([]*Node, len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node) IndexOfChild(ch *Node) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// IsLeaf is true for nodes without children.
func (node *Node) IsLeaf() bool {
	return len(node.children) == 0
}

// IsSelfClosing is true for nodes which will render in self-closing form,
// i.e. nodes without text and without children.
func (node *Node) IsSelfClosing() bool {
	return node.text == "" && len(node.children) == 0
}

// Clone creates a deep copy of a node and its sub-tree. The copy does not
// have a parent.
func (node *Node) Clone() *Node {
	if node == nil {
		return nil
	}
	c := &Node{
		name: node.name,
		text: node.text,
	}
	if len(node.attributes) > 0 {
		c.attributes = make([]Attribute, len(node.attributes))
		copy(c.attributes, node.attributes)
	}
	if len(node.children) > 0 {
		c.children = make([]*Node, len(node.children))
		for i, ch := range node.children {
			cc := ch.Clone()
			cc.parent = c
			c.children[i] = cc
		}
	}
	return c
}

// Equal compares two (sub-)trees structurally: names, texts, attributes
// (in order) and children (recursively, in order) must match.
// Parent links are not considered.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.name != b.name || a.text != b.text {
		return false
	}
	if len(a.attributes) != len(b.attributes) || len(a.children) != len(b.children) {
		return false
	}
	for i, attr := range a.attributes {
		if attr != b.attributes[i] {
			return false
		}
	}
	for i, ch := range a.children {
		if !Equal(ch, b.children[i]) {
			return false
		}
	}
	return true
}

// Walk calls f for node and every node of its sub-tree, parents before
// children, children in order. depth is 0 for node itself.
// If f returns false, the children of the current node are skipped.
func (node *Node) Walk(f func(n *Node, depth int) bool) {
	node.walk(f, 0)
}

func (node *Node) walk(f func(n *Node, depth int) bool, depth int) {
	if node == nil || !f(node, depth) {
		return
	}
	for _, ch := range node.children {
		ch.walk(f, depth+1)
	}
}

// Size returns the number of nodes in the sub-tree rooted at node,
// including node itself.
func (node *Node) Size() int {
	cnt := 0
	node.Walk(func(*Node, int) bool {
		cnt++
		return true
	})
	return cnt
}
