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
		Use:   "bmdedup <bookmarks.html>",
		Short: "Remove duplicate bookmarks from a Netscape bookmark export",
		Long: `bmdedup reads a browser bookmark export (Netscape bookmark HTML),
removes duplicate URLs keeping the first occurrence in document order,
prunes folders left empty, and writes the result next to the input.

Examples:
  bmdedup bookmarks_2024.html
  bmdedup bookmarks.html -o clean.html
  bmdedup bookmarks.html --preview`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commands.NewLogger(flagVerbose)
			cfg := config.Dedupe()
			c := commands.NewDedupeCommand(cfg, log)

			input := args[0]
			output := flagOutput
			if output == "" {
				output = cfg.OutputPath(input)
			}

			if !flagPreview {
				return c.Execute(input, output)
			}

			root, stats, err := c.Run(input)
			if err != nil {
				return err
			}
			write, err := ui.NewPreview().RunTree(root, c.Summary(stats))
			if err != nil {
				return err
			}
			if !write {
				fmt.Fprintln(os.Stderr, "Aborted, nothing written.")
				return nil
			}
			if err := c.Write(root, output); err != nil {
				return err
			}
			fmt.Println("Wrote deduped HTML to:", output)
			fmt.Print(c.Summary(stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output HTML path (default: input with .dedup.html suffix)")
	cmd.Flags().BoolVar(&flagPreview, "preview", false, "Browse the result before writing")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}
