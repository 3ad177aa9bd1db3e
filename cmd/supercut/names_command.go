package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"supercut/internal/engine"
)

func newNamesCommand(ctx *commandContext) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "names VIDEOS...",
		Short: "List speakers and how many lines each has",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline) error {
				videos, err := resolveVideos(args)
				if err != nil {
					return err
				}
				tracks, err := p.extractTracks(cmd.Context(), videos)
				if err != nil {
					return err
				}

				counts := engine.CountSpeakers(tracks, query)
				caser := cases.Title(language.Und)
				rows := make([][]string, 0, len(counts))
				for _, count := range counts {
					name := count.Name
					if name == "" {
						name = "(no speaker)"
					} else {
						name = caser.String(name)
					}
					rows = append(rows, []string{name, strconv.Itoa(count.Count)})
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Speaker", "Lines"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only count lines containing this text")
	return cmd
}
