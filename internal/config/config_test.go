package config

import "testing"

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bookmarks.html", "bookmarks.dedup.html"},
		{"bookmarks.htm", "bookmarks.dedup.html"},
		{"BOOKMARKS.HTML", "BOOKMARKS.dedup.html"},
		{"dir/export_2024.html", "dir/export_2024.dedup.html"},
		{"noextension", "noextension.dedup.html"},
		{"archive.html.bak", "archive.html.bak.dedup.html"},
	}
	cfg := Dedupe()
	for _, tt := range tests {
		if got := cfg.OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputPathFlatten(t *testing.T) {
	if got := Flatten().OutputPath("bookmarks.html"); got != "bookmarks.flat.html" {
		t.Errorf("OutputPath = %q, want bookmarks.flat.html", got)
	}
}

func TestWithOutputSuffix(t *testing.T) {
	cfg := Dedupe().WithOutputSuffix(".clean.html")
	if got := cfg.OutputPath("a.html"); got != "a.clean.html" {
		t.Errorf("OutputPath = %q, want a.clean.html", got)
	}
}
