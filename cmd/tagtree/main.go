/*
Command tagtree renders demonstration tag trees.

Usage:

    tagtree list                       // list available demo trees
    tagtree render page --indent 4     // render a demo tree
    tagtree render list --format html  // compact, escaped HTML
    tagtree products --color green     // filter products, render as list
    tagtree class Person name:string age:int

Rendering defaults may be set in a NestedText configuration file
(see flag --config):

    render:
        indent: 2
        format: canonical
    tracelevel:
        root: Error
        markup.builder: Debug

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'markup.cli'.
func tracer() tracing.Trace {
	return tracing.Select("markup.cli")
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// app holds state shared between sub-commands.
type app struct {
	configFile string
	settings   settings
}

func rootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tagtree",
		Short: "Build and render markup tag trees",
		Long: `tagtree builds markup trees with fluent builders and renders them
in canonical indented form, as compact HTML, as an outline or as a
GraphViz diagram.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "configuration file (NestedText)")
	pf.Int("indent", defaultIndent, "indentation width per nesting level")
	pf.String("format", defaultFormat, "output format: canonical|html|outline|dot")
	pf.String("trace", "", "trace level for all markup tracers: Error|Info|Debug")
	root.AddCommand(
		listCmd(),
		renderCmd(a),
		productsCmd(a),
		classCmd(),
		versionCmd(),
	)
	return root
}
