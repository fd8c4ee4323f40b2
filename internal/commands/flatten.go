package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"bmtidy/internal/config"
	"bmtidy/internal/engine"
	"bmtidy/internal/export"
)

// FlattenCommand merges same-named folders from the whole tree into one
// flat level and removes duplicate bookmarks across all of them.
type FlattenCommand struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewFlattenCommand creates a new flatten command
func NewFlattenCommand(cfg *config.Config, log zerolog.Logger) *FlattenCommand {
	return &FlattenCommand{cfg: cfg, log: log}
}

// Run parses the input file, builds the merged buckets and dedupes
// them globally. Nothing is written yet.
func (c *FlattenCommand) Run(inputPath string) (*engine.BucketSet, engine.Stats, error) {
	root, err := parseFile(inputPath, c.log)
	if err != nil {
		return nil, engine.Stats{}, err
	}

	set := engine.Flatten(root, c.cfg.UnsortedName)
	stats := set.Dedupe(engine.NewSeen())
	c.log.Debug().
		Int("kept", stats.URLsKept).
		Int("removed", stats.URLsRemoved).
		Int("folders_kept", stats.FoldersKept).
		Msg("flatten finished")
	return set, stats, nil
}

// Write serializes the bucket set to outputPath in one shot.
func (c *FlattenCommand) Write(set *engine.BucketSet, outputPath string) error {
	var buf bytes.Buffer
	if err := export.NewWriter(c.cfg.DocTitle).WriteBuckets(&buf, set); err != nil {
		return fmt.Errorf("failed to serialize: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return nil
}

// Execute runs the full pipeline and prints the summary.
func (c *FlattenCommand) Execute(inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = c.cfg.OutputPath(inputPath)
	}

	set, stats, err := c.Run(inputPath)
	if err != nil {
		return err
	}
	if err := c.Write(set, outputPath); err != nil {
		return err
	}

	fmt.Println("Wrote flattened + merged HTML to:", outputPath)
	fmt.Print(c.Summary(stats))
	return nil
}

// Summary renders the post-run counters.
func (c *FlattenCommand) Summary(stats engine.Stats) string {
	return fmt.Sprintf("Summary:\n  Kept URLs:     %d\n  Removed URLs:  %d\n  Folders kept:  %d (unique names with at least one bookmark)\n",
		stats.URLsKept, stats.URLsRemoved, stats.FoldersKept)
}
