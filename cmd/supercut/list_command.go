package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"supercut/internal/engine"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		query string
		names []string
	)

	cmd := &cobra.Command{
		Use:   "list VIDEOS...",
		Short: "Print matching subtitle lines with their clip indices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline) error {
				refs, err := p.selectLines(cmd.Context(), args, query, names)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), engine.RenderListing(refs))
				return nil
			})
		},
	}

	addSelectionFlags(cmd, &query, &names)
	return cmd
}

func addSelectionFlags(cmd *cobra.Command, query *string, names *[]string) {
	cmd.Flags().StringVarP(query, "query", "q", "", "Only select lines containing this text")
	cmd.Flags().StringArrayVarP(names, "name", "n", nil, "Only select lines spoken by this speaker (repeatable)")
}
