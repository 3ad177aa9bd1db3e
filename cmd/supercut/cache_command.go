package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Cue cache maintenance",
	}

	cacheCmd.AddCommand(newCachePruneCommand(ctx))

	return cacheCmd
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop cached cue tracks whose source videos are gone",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(func(p *pipeline) error {
				if p.cache == nil {
					return fmt.Errorf("no cue cache configured; set paths.cache_dir or pass --cache-dir")
				}
				removed, err := p.cache.Prune(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d stale entries from %s\n", removed, p.cache.Path())
				return nil
			})
		},
	}
}
