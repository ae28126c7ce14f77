/*
Package codebuilder builds declarations of classes with fields.

    cb := codebuilder.New("Person").AddField("name", "string").AddField("age", "int")
    fmt.Println(cb)

will print

    class Person
    {
      string name;
      int age;
    };

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codebuilder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.codebuilder'.
func tracer() tracing.Trace {
	return tracing.Select("markup.codebuilder")
}

// ErrInvalidArgument is returned (wrapped) for empty class, field or type names.
var ErrInvalidArgument = errors.New("invalid argument")

// Indent is the indentation of fields.
const Indent = "  "

// Field is a field declaration.
type Field struct {
	Name string
	Type string
}

// CodeBuilder accumulates fields of a class declaration.
type CodeBuilder struct {
	name   string
	fields []Field
	err    error
}

// New creates a builder for a class with a given name.
func New(className string) *CodeBuilder {
	cb := &CodeBuilder{name: className}
	if className == "" {
		cb.err = fmt.Errorf("codebuilder: class name must not be empty: %w", ErrInvalidArgument)
		tracer().Errorf(cb.err.Error())
	}
	return cb
}

// AddField appends a field. Fields are rendered in insertion order.
// It returns the builder to allow for chaining.
func (cb *CodeBuilder) AddField(name, typ string) *CodeBuilder {
	if cb.err != nil {
		return cb
	}
	if name == "" || typ == "" {
		cb.err = fmt.Errorf("codebuilder: field %q of type %q in class %s: %w",
			name, typ, cb.name, ErrInvalidArgument)
		tracer().Errorf(cb.err.Error())
		return cb
	}
	cb.fields = append(cb.fields, Field{Name: name, Type: typ})
	tracer().Debugf("class %s: added field %s %s", cb.name, typ, name)
	return cb
}

// Err returns the first error which occured while building, if any.
func (cb *CodeBuilder) Err() error {
	return cb.err
}

// Fields returns a copy of the fields added so far.
func (cb *CodeBuilder) Fields() []Field {
	fields := make([]Field, len(cb.fields))
	copy(fields, cb.fields)
	return fields
}

// Build returns the class declaration, or the first error which occured.
func (cb *CodeBuilder) Build() (string, error) {
	if cb.err != nil {
		return "", cb.err
	}
	return cb.String(), nil
}

// String renders the class declaration. Builders in an error state render
// what has been accumulated before the error.
func (cb *CodeBuilder) String() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(cb.name)
	sb.WriteString("\n{\n")
	for _, f := range cb.fields {
		sb.WriteString(Indent)
		sb.WriteString(f.Type)
		sb.WriteByte(' ')
		sb.WriteString(f.Name)
		sb.WriteString(";\n")
	}
	sb.WriteString("};")
	return sb.String()
}
