package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediaconv/internal/catalog"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List recognized media extensions and curated output formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Scanned extensions:")
			fmt.Fprintln(out, "  "+strings.Join(catalog.Extensions, ", "))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Curated output formats:")
			fmt.Fprintln(out, "  "+strings.Join(catalog.CommonOutputFormats, ", "))
			return nil
		},
	}
}
