package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bmtidy/internal/commands"
	"bmtidy/internal/config"
	"bmtidy/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		flagOutput  string
		flagPreview bool
		flagVerbose bool
	)

	cmd := &cobra.Command{
		Use:   "bmflatten <bookmarks.html>",
		Short: "Flatten a bookmark export, merging same-named folders",
		Long: `bmflatten reads a browser bookmark export (Netscape bookmark HTML),
merges folders that share a name anywhere in the tree into one flat
folder each, removes duplicate URLs across all of them keeping the
first occurrence in document order, and writes the result next to the
input. Bookmarks outside any folder land in "Unsorted".

Examples:
  bmflatten bookmarks_2024.html
  bmflatten bookmarks.html -o flat.html
  bmflatten bookmarks.html --preview`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commands.NewLogger(flagVerbose)
			cfg := config.Flatten()
			c := commands.NewFlattenCommand(cfg, log)

			input := args[0]
			output := flagOutput
			if output == "" {
				output = cfg.OutputPath(input)
			}

			if !flagPreview {
				return c.Execute(input, output)
			}

			set, stats, err := c.Run(input)
			if err != nil {
				return err
			}
			write, err := ui.NewPreview().RunBuckets(set, c.Summary(stats))
			if err != nil {
				return err
			}
			if !write {
				fmt.Fprintln(os.Stderr, "Aborted, nothing written.")
				return nil
			}
			if err := c.Write(set, output); err != nil {
				return err
			}
			fmt.Println("Wrote flattened + merged HTML to:", output)
			fmt.Print(c.Summary(stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output HTML path (default: input with .flat.html suffix)")
	cmd.Flags().BoolVar(&flagPreview, "preview", false, "Browse the result before writing")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}
