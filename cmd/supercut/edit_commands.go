package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"supercut/internal/engine"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Fine-tune a supercut through an editable line listing",
	}

	editCmd.AddCommand(newEditCreateCommand(ctx))
	editCmd.AddCommand(newEditPreviewCommand(ctx))
	editCmd.AddCommand(newEditRenderCommand(ctx))

	return editCmd
}

func newEditCreateCommand(ctx *commandContext) *cobra.Command {
	var (
		query    string
		names    []string
		listfile string
	)

	cmd := &cobra.Command{
		Use:   "create VIDEOS...",
		Short: "Write the matching lines as an editable list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline) error {
				refs, err := p.selectLines(cmd.Context(), args, query, names)
				if err != nil {
					return err
				}
				listing := engine.RenderListing(refs)
				if listfile == "" {
					fmt.Fprint(cmd.OutOrStdout(), listing)
					return nil
				}
				if err := os.WriteFile(listfile, []byte(listing), 0o644); err != nil {
					return fmt.Errorf("write edit list: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d lines to %s\n", len(refs), listfile)
				return nil
			})
		},
	}

	addSelectionFlags(cmd, &query, &names)
	cmd.Flags().StringVar(&listfile, "listfile", "", "Destination file (defaults to stdout)")
	return cmd
}

func newEditPreviewCommand(ctx *commandContext) *cobra.Command {
	var (
		query    string
		names    []string
		listfile string
	)

	cmd := &cobra.Command{
		Use:   "preview VIDEOS...",
		Short: "Play the supercut described by an edit list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline) error {
				plan, err := planFromEditList(cmd, p, args, query, names, listfile)
				if err != nil {
					return err
				}
				return p.player.Preview(cmd.Context(), plan, p.cfg.Subtitles.Language)
			})
		},
	}

	addSelectionFlags(cmd, &query, &names)
	cmd.Flags().StringVar(&listfile, "listfile", "", "Edit list to load")
	_ = cmd.MarkFlagRequired("listfile")
	return cmd
}

func newEditRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		query    string
		names    []string
		listfile string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "render VIDEOS...",
		Short: "Render the supercut described by an edit list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline) error {
				plan, err := planFromEditList(cmd, p, args, query, names, listfile)
				if err != nil {
					return err
				}
				return renderPlan(cmd, p, plan, output)
			})
		},
	}

	addSelectionFlags(cmd, &query, &names)
	cmd.Flags().StringVar(&listfile, "listfile", "", "Edit list to load")
	_ = cmd.MarkFlagRequired("listfile")
	cmd.Flags().StringVarP(&output, "output", "o", "supercut.mp4", "Output video file")
	return cmd
}

// planFromEditList re-runs the selection that produced the edit list, applies
// the list against it, and builds the resulting plan. The selection must use
// the same videos, query, and names as `edit create`, otherwise indices
// point at different lines.
func planFromEditList(cmd *cobra.Command, p *pipeline, args []string, query string, names []string, listfile string) (engine.Plan, error) {
	refs, err := p.selectLines(cmd.Context(), args, query, names)
	if err != nil {
		return engine.Plan{}, err
	}
	text, err := os.ReadFile(listfile)
	if err != nil {
		return engine.Plan{}, fmt.Errorf("read edit list: %w", err)
	}
	edited, err := engine.ParseEditList(string(text), refs)
	if err != nil {
		return engine.Plan{}, fmt.Errorf("%s: %w", listfile, err)
	}
	return engine.BuildPlan(edited)
}
