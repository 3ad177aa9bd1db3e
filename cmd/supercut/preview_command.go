package main

import (
	"github.com/spf13/cobra"

	"supercut/internal/engine"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var (
		query string
		names []string
	)

	cmd := &cobra.Command{
		Use:   "preview VIDEOS...",
		Short: "Play the matching sections in VLC",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline) error {
				refs, err := p.selectLines(cmd.Context(), args, query, names)
				if err != nil {
					return err
				}
				plan, err := engine.BuildPlan(refs)
				if err != nil {
					return err
				}
				return p.player.Preview(cmd.Context(), plan, p.cfg.Subtitles.Language)
			})
		},
	}

	addSelectionFlags(cmd, &query, &names)
	return cmd
}
