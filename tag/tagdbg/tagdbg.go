/*
Package tagdbg implements helpers to debug a tag tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package tagdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/markup/tag"
	tp "github.com/xlab/treeprint"
)

// Outline returns a tree outline of a tag tree, one line per node.
// Attributes are shown as meta information, text payloads as leaf nodes.
//
//    <ul>
//    ├── [class="x"]  <li>
//    │   └── "hello"
//    └── <li>
//        └── "world"
//
func Outline(n *tag.Node) string {
	if n == nil {
		return ""
	}
	printer := tp.NewWithRoot(label(n))
	outlineChildren(printer, n)
	return printer.String()
}

func outlineChildren(printer tp.Tree, n *tag.Node) {
	if n.Text() != "" {
		printer.AddNode(fmt.Sprintf("%q", n.Text()))
	}
	for _, ch := range n.Children() {
		var branch tp.Tree
		if meta := attrString(ch); meta != "" {
			branch = printer.AddMetaBranch(meta, label(ch))
		} else {
			branch = printer.AddBranch(label(ch))
		}
		outlineChildren(branch, ch)
	}
}

func label(n *tag.Node) string {
	return "<" + n.Name() + ">"
}

func attrString(n *tag.Node) string {
	attrs := n.Attributes()
	if len(attrs) == 0 {
		return ""
	}
	s := make([]string, len(attrs))
	for i, a := range attrs {
		s[i] = a.String()
	}
	return strings.Join(s, " ")
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a tag tree. The diagram is in
// GraphViz (DOT) format. Element nodes are drawn as ellipses, text payloads
// as boxes.
//
// The result may be converted to an image with
//
//     dot -Tsvg -otree.svg tree.dot
//
func ToGraphViz(n *tag.Node, w io.Writer) error {
	tmpl, err := template.New("tags").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("tagnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(tagNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("tagedge").Parse(tagEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if n != nil {
		dict := make(map[*tag.Node]string, 64)
		if err = nodes(n, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name  string
	Label string
	Attrs string
	Text  string
}

type edge struct {
	From, To string
}

func nodes(n *tag.Node, w io.Writer, dict map[*tag.Node]string, gparams *graphParamsType) error {
	name := nodeName(n, dict)
	gn := node{Name: name, Label: n.Name(), Attrs: attrString(n), Text: n.Text()}
	if err := gparams.NodeTmpl.Execute(w, gn); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(n *tag.Node, dict map[*tag.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func shortText(s string) string {
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = fmt.Sprintf("%q", s)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const tagNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }}{{ if .Attrs }} xlabel={{ printf "%q" .Attrs }}{{ end }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ if .Text }}{{ .Name }}t	[ label={{ shortstring .Text }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ .Name }} -> {{ .Name }}t [dir=none weight=1 style="dashed"] ;
{{ end }}`

const tagEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
