package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/markup/builder"
	"github.com/npillmayer/markup/spec"
	"github.com/npillmayer/markup/tag"
	"github.com/spf13/cobra"
)

// Color of a product.
type Color int

// Colors.
const (
	Red Color = iota
	Green
	Blue
)

var colorNames = []string{"red", "green", "blue"}

func (c Color) String() string { return colorNames[c] }

// Size of a product.
type Size int

// Sizes.
const (
	Small Size = iota
	Medium
	Large
)

var sizeNames = []string{"small", "medium", "large"}

func (s Size) String() string { return sizeNames[s] }

// Product is an item of the catalog.
type Product struct {
	Name  string
	Color Color
	Size  Size
}

var catalog = []Product{
	{"Apple", Green, Small},
	{"Tree", Green, Large},
	{"House", Blue, Large},
	{"Cherry", Red, Small},
	{"Car", Red, Medium},
}

func colorIs(c Color) *spec.Spec[Product] {
	return spec.Named("color="+c.String(), func(p Product) bool { return p.Color == c })
}

func sizeIs(s Size) *spec.Spec[Product] {
	return spec.Named("size="+s.String(), func(p Product) bool { return p.Size == s })
}

func lookup(names []string, name string) (int, bool) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i, true
		}
	}
	return -1, false
}

// productSpec creates a specification from command line values. Empty values
// are ignored; if neither color nor size is given, every product matches.
func productSpec(color, size string, matchAny bool) (*spec.Spec[Product], error) {
	var specs []*spec.Spec[Product]
	if color != "" {
		c, ok := lookup(colorNames, color)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", color)
		}
		specs = append(specs, colorIs(Color(c)))
	}
	if size != "" {
		s, ok := lookup(sizeNames, size)
		if !ok {
			return nil, fmt.Errorf("unknown size %q", size)
		}
		specs = append(specs, sizeIs(Size(s)))
	}
	switch len(specs) {
	case 0:
		return spec.Named("all", func(Product) bool { return true }), nil
	case 1:
		return specs[0], nil
	}
	if matchAny {
		return spec.Or(specs[0], specs[1]), nil
	}
	return spec.And(specs[0], specs[1]), nil
}

// productList renders products as an unordered list.
func productList(products []Product) (*tag.Node, error) {
	b := builder.New("ul").Attribute("class", "products")
	for _, p := range products {
		b.AppendLeafWith("li", p.Name,
			tag.A("data-color", p.Color.String()),
			tag.A("data-size", p.Size.String()))
	}
	return b.Build()
}

func productsCmd(a *app) *cobra.Command {
	var color, size string
	var matchAny bool
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Filter the product catalog and render the selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := productSpec(color, size, matchAny)
			if err != nil {
				return err
			}
			tracer().Infof("filtering products with %s", s)
			n, err := productList(spec.Filter(catalog, s))
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), n, a.settings)
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "select products of a color: red|green|blue")
	cmd.Flags().StringVar(&size, "size", "", "select products of a size: small|medium|large")
	cmd.Flags().BoolVar(&matchAny, "any", false, "match color OR size instead of color AND size")
	return cmd
}
