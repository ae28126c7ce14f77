package spec

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Kind is the kind of a specification node.
type Kind int8

// Kinds of specification nodes.
const (
	KindLeaf Kind = iota
	KindAnd
	KindOr
	KindNot
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindNot:
		return "NOT"
	}
	return "?"
}

// Predicate tests a single item.
type Predicate[T any] func(item T) bool

// Spec is a node of a specification expression tree.
// Specs are immutable once created and may be shared between expressions.
type Spec[T any] struct {
	kind  Kind
	label string       // for leafs
	pred  Predicate[T] // for leafs
	left  *Spec[T]     // operand for NOT, left operand for AND/OR
	right *Spec[T]     // right operand for AND/OR
}

// Leaf creates a specification from a predicate.
func Leaf[T any](pred func(T) bool) *Spec[T] {
	return Named("", pred)
}

// Named creates a labeled specification from a predicate. The label is used
// for String() only.
func Named[T any](label string, pred func(T) bool) *Spec[T] {
	assertThat(pred != nil, "predicate for leaf specification must not be nil")
	if label == "" {
		label = "?"
	}
	return &Spec[T]{kind: KindLeaf, label: label, pred: pred}
}

// And creates a specification satisfied if both left and right are satisfied.
func And[T any](left, right *Spec[T]) *Spec[T] {
	assertThat(left != nil && right != nil, "operands of AND must not be nil")
	return &Spec[T]{kind: KindAnd, left: left, right: right}
}

// Or creates a specification satisfied if left or right is satisfied.
func Or[T any](left, right *Spec[T]) *Spec[T] {
	assertThat(left != nil && right != nil, "operands of OR must not be nil")
	return &Spec[T]{kind: KindOr, left: left, right: right}
}

// Not creates a specification satisfied if s is not satisfied.
func Not[T any](s *Spec[T]) *Spec[T] {
	assertThat(s != nil, "operand of NOT must not be nil")
	return &Spec[T]{kind: KindNot, left: s}
}

// And is a fluent variant of And(s, other).
func (s *Spec[T]) And(other *Spec[T]) *Spec[T] {
	return And(s, other)
}

// Or is a fluent variant of Or(s, other).
func (s *Spec[T]) Or(other *Spec[T]) *Spec[T] {
	return Or(s, other)
}

// Kind returns the kind of the top-level node of s.
func (s *Spec[T]) Kind() Kind {
	return s.kind
}

// IsSatisfied checks if an item meets the specification.
func (s *Spec[T]) IsSatisfied(item T) bool {
	assertThat(s != nil, "cannot evaluate nil specification")
	switch s.kind {
	case KindLeaf:
		return s.pred(item)
	case KindAnd:
		return s.left.IsSatisfied(item) && s.right.IsSatisfied(item)
	case KindOr:
		return s.left.IsSatisfied(item) || s.right.IsSatisfied(item)
	case KindNot:
		return !s.left.IsSatisfied(item)
	}
	panic("markup.spec: unknown specification kind " + s.kind.String())
}

func (s *Spec[T]) String() string {
	var sb strings.Builder
	s.format(&sb)
	return sb.String()
}

func (s *Spec[T]) format(sb *strings.Builder) {
	switch s.kind {
	case KindLeaf:
		sb.WriteString(s.label)
	case KindNot:
		sb.WriteString("NOT ")
		s.left.format(sb)
	default:
		sb.WriteByte('(')
		s.left.format(sb)
		sb.WriteByte(' ')
		sb.WriteString(s.kind.String())
		sb.WriteByte(' ')
		s.right.format(sb)
		sb.WriteByte(')')
	}
}

// Filter returns the items meeting a specification, in their original order.
// The input slice is not modified.
func Filter[T any](items []T, s *Spec[T]) []T {
	assertThat(s != nil, "cannot filter with nil specification")
	var result []T
	for _, item := range items {
		if s.IsSatisfied(item) {
			result = append(result, item)
		}
	}
	tracer().Debugf("filter %s selected %d of %d items", s, len(result), len(items))
	return result
}
