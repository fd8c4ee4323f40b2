package config

import "regexp"

// Config holds tool defaults
type Config struct {
	// OutputSuffix replaces the input's .html/.htm extension when no
	// explicit output path is given.
	OutputSuffix string
	// DocTitle is the TITLE of the generated document.
	DocTitle string
	// UnsortedName is the display name of the flatten catch-all bucket.
	UnsortedName string
}

// Dedupe returns the defaults for the structure-preserving dedupe tool.
func Dedupe() *Config {
	return &Config{
		OutputSuffix: ".dedup.html",
		DocTitle:     "Bookmarks",
		UnsortedName: "Unsorted",
	}
}

// Flatten returns the defaults for the flatten-and-merge tool.
func Flatten() *Config {
	return &Config{
		OutputSuffix: ".flat.html",
		DocTitle:     "Bookmarks (Flattened)",
		UnsortedName: "Unsorted",
	}
}

// WithOutputSuffix sets a custom output suffix
func (c *Config) WithOutputSuffix(suffix string) *Config {
	c.OutputSuffix = suffix
	return c
}

var htmlExt = regexp.MustCompile(`(?i)\.html?$`)

// OutputPath derives the default output path for input by replacing a
// trailing .html/.htm (any case) with the configured suffix. Inputs
// without that extension just get the suffix appended.
func (c *Config) OutputPath(input string) string {
	return htmlExt.ReplaceAllString(input, "") + c.OutputSuffix
}
