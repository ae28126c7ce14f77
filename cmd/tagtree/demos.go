package main

import (
	"fmt"
	"sort"

	"github.com/npillmayer/markup"
	"github.com/npillmayer/markup/builder"
	"github.com/npillmayer/markup/tag"
	"github.com/npillmayer/markup/tags"
	"github.com/spf13/cobra"
)

type demo struct {
	description string
	build       func() (*tag.Node, error)
}

var demos = map[string]demo{
	"list": {
		description: "an unordered list built with the fluent builder",
		build: func() (*tag.Node, error) {
			return builder.New("ul").
				AppendLeaf("li", "hello").
				AppendLeaf("li", "world").
				Build()
		},
	},
	"page": {
		description: "an HTML page built from element helpers",
		build: func() (*tag.Node, error) {
			return tags.HTML(nil,
				tags.Head(
					tags.Title("My Page"),
				),
				tags.Body(
					tags.H1("My Title"),
					tags.H2("My Subtitle"),
					tags.P("Some text"),
					tags.Img("link/to/an/image.jpg"),
					tags.Blockquote("This is my image", "This is my source"),
				),
			), nil
		},
	},
	"formatting": {
		description: "text formatting elements",
		build: func() (*tag.Node, error) {
			return builder.New("p").
				AppendNode(tags.Abbr("WHO", "World Health Organization")).
				AppendNode(tags.Bdi("إيان")).
				AppendNode(tags.Bdo(tags.RTL, "This text will go right-to-left.")).
				AppendNode(tags.Br()).
				AppendNode(tags.Hr()).
				Build()
		},
	},
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List demo trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range demoNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, demos[name].description)
			}
			return nil
		},
	}
}

func renderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "render <demo>",
		Short:     "Render a demo tree",
		Args:      cobra.ExactArgs(1),
		ValidArgs: demoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := demos[args[0]]
			if !ok {
				return fmt.Errorf("unknown demo %q; try 'tagtree list'", args[0])
			}
			n, err := d.build()
			if err != nil {
				return err
			}
			tracer().Debugf("rendering demo %q with %d nodes", args[0], n.Size())
			return write(cmd.OutOrStdout(), n, a.settings)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tagtree %s\n", markup.Version)
			return nil
		},
	}
}
