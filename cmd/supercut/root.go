package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag   string
		cacheDirFlag string
		languageFlag string
		externalFlag bool
	)

	ctx := newCommandContext(&configFlag, &cacheDirFlag, &languageFlag, &externalFlag)

	rootCmd := &cobra.Command{
		Use:           "supercut",
		Short:         "Build supercuts from subtitle searches",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", "", "Cue cache directory (empty disables caching)")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "", "Subtitle language tag (three letters)")
	rootCmd.PersistentFlags().BoolVarP(&externalFlag, "external-subs", "e", false, "Prefer sidecar subtitle files over embedded tracks")

	rootCmd.AddCommand(newNamesCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newEditCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
