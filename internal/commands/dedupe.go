package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"bmtidy/internal/config"
	"bmtidy/internal/engine"
	"bmtidy/internal/export"
	"bmtidy/internal/models"
	"bmtidy/internal/parser"
)

// DedupeCommand removes duplicate bookmarks from an export while
// keeping the folder structure, pruning folders left empty.
type DedupeCommand struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewDedupeCommand creates a new dedupe command
func NewDedupeCommand(cfg *config.Config, log zerolog.Logger) *DedupeCommand {
	return &DedupeCommand{cfg: cfg, log: log}
}

// Run parses the input file and returns the deduped tree with its
// stats. Nothing is written yet.
func (c *DedupeCommand) Run(inputPath string) (*models.Folder, engine.Stats, error) {
	root, err := parseFile(inputPath, c.log)
	if err != nil {
		return nil, engine.Stats{}, err
	}

	pruned, stats := engine.Prune(root, engine.NewSeen())
	c.log.Debug().
		Int("kept", stats.URLsKept).
		Int("removed", stats.URLsRemoved).
		Int("folders_pruned", stats.FoldersPruned).
		Msg("dedupe finished")
	return pruned, stats, nil
}

// Write serializes the deduped tree to outputPath in one shot.
func (c *DedupeCommand) Write(root *models.Folder, outputPath string) error {
	var buf bytes.Buffer
	if err := export.NewWriter(c.cfg.DocTitle).WriteTree(&buf, root); err != nil {
		return fmt.Errorf("failed to serialize: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return nil
}

// Execute runs the full pipeline and prints the summary.
func (c *DedupeCommand) Execute(inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = c.cfg.OutputPath(inputPath)
	}

	root, stats, err := c.Run(inputPath)
	if err != nil {
		return err
	}
	if err := c.Write(root, outputPath); err != nil {
		return err
	}

	fmt.Println("Wrote deduped HTML to:", outputPath)
	fmt.Print(c.Summary(stats))
	return nil
}

// Summary renders the post-run counters.
func (c *DedupeCommand) Summary(stats engine.Stats) string {
	return fmt.Sprintf("Summary:\n  Kept URLs:      %d\n  Removed URLs:   %d\n  Folders pruned: %d\n",
		stats.URLsKept, stats.URLsRemoved, stats.FoldersPruned)
}

// parseFile opens and parses a bookmark export. A missing input is the
// one error reported to the user before anything is written.
func parseFile(path string, log zerolog.Logger) (*models.Folder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	root, err := parser.New().Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	log.Debug().Str("input", path).Msg("parsed bookmark export")
	return root, nil
}
