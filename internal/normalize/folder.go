package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const nbsp = "\u00a0"

// edgePunct lists decoration characters trimmed from the ends of a
// folder name: slash, pipe, hyphen, colon, period, middle dot,
// semicolon.
const edgePunct = "/|-:.·;"

// FolderName returns the canonical bucket key for a folder name:
// NFC-normalized, non-breaking spaces replaced, whitespace runs
// collapsed, trimmed, lowercased, edge punctuation stripped. An empty
// result means the name carries no identity of its own.
func FolderName(name string) string {
	n := norm.NFC.String(name)
	n = strings.ReplaceAll(n, nbsp, " ")
	n = strings.Join(strings.Fields(n), " ")
	n = strings.ToLower(n)
	return strings.Trim(n, edgePunct)
}
