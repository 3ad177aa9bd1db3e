package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"supercut/internal/engine"
	"supercut/internal/logging"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		query  string
		names  []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render VIDEOS...",
		Short: "Render the matching sections into a single video file",
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
				return renderPlan(cmd, p, plan, output)
			})
		},
	}

	addSelectionFlags(cmd, &query, &names)
	cmd.Flags().StringVarP(&output, "output", "o", "supercut.mp4", "Output video file")
	return cmd
}

func renderPlan(cmd *cobra.Command, p *pipeline, plan engine.Plan, output string) error {
	jobID := uuid.NewString()
	p.logger.Info("rendering supercut",
		logging.String("job", jobID),
		logging.Int("segments", len(plan.Segments)),
		logging.Duration("total", plan.Duration()),
		logging.String("output", output))

	if err := p.media.RenderPlan(cmd.Context(), plan, output, jobID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d clips, %s)\n",
		output, len(plan.Segments), plan.Duration().Round(timeRounding))
	return nil
}
