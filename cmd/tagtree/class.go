package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/markup/codebuilder"
	"github.com/spf13/cobra"
)

func classCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "class <name> [field:type …]",
		Short: "Print a class declaration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cb := codebuilder.New(args[0])
			for _, arg := range args[1:] {
				name, typ, ok := strings.Cut(arg, ":")
				if !ok {
					return fmt.Errorf("field %q: expected name:type", arg)
				}
				cb.AddField(name, typ)
			}
			out, err := cb.Build()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
