package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"supercut/internal/engine"
	"supercut/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the supercut as an editor project",
	}

	exportCmd.AddCommand(newExportFormatCommand(ctx, "edl", "Write a CMX 3600 edit decision list",
		func(title string, plan engine.Plan) (string, error) {
			return export.EDL(title, plan), nil
		}))
	exportCmd.AddCommand(newExportFormatCommand(ctx, "mlt", "Write a Shotcut project", export.MLT))

	return exportCmd
}

func newExportFormatCommand(ctx *commandContext, format, short string, render func(string, engine.Plan) (string, error)) *cobra.Command {
	var (
		query    string
		names    []string
		listfile string
		title    string
		output   string
	)

	cmd := &cobra.Command{
		Use:   format + " VIDEOS...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline) error {
				var plan engine.Plan
				var err error
				if listfile != "" {
					plan, err = planFromEditList(cmd, p, args, query, names, listfile)
				} else {
					var refs []engine.ClipReference
					refs, err = p.selectLines(cmd.Context(), args, query, names)
					if err == nil {
						plan, err = engine.BuildPlan(refs)
					}
				}
				if err != nil {
					return err
				}

				content, err := render(title, plan)
				if err != nil {
					return err
				}
				if output == "" {
					fmt.Fprint(cmd.OutOrStdout(), content)
					return nil
				}
				if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
					return fmt.Errorf("write %s project: %w", format, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d clips)\n", output, len(plan.Segments))
				return nil
			})
		},
	}

	addSelectionFlags(cmd, &query, &names)
	cmd.Flags().StringVar(&listfile, "listfile", "", "Edit list to apply before exporting")
	cmd.Flags().StringVarP(&title, "title", "t", "Supercut", "Project title")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (defaults to stdout)")
	return cmd
}
