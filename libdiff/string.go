package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString is a character diff of two strings, by line first when both
// span several lines.
func DiffString(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	return dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, multiLine))
}

// DiffBytes diffs the hex dumps of two byte runs, so that edits line up on
// byte boundaries.
func DiffBytes(from, to []byte) []diffpatch.Diff {
	dmp := diffpatch.New()
	// one byte per line keeps the diff byte aligned
	a, b, lines := dmp.DiffLinesToChars(hexLines(from), hexLines(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for i := range diffs {
		diffs[i].Text = strings.TrimSpace(strings.ReplaceAll(diffs[i].Text, "\n", " "))
	}
	return diffs
}

func hexLines(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		fmt.Fprintf(&sb, "%02x\n", c)
	}
	return sb.String()
}

// FormatText renders diffs inline, deletions as [-text-] and insertions as
// {+text+}, joined by sep.
func FormatText(diffs []diffpatch.Diff, sep string) string {
	parts := make([]string, len(diffs))
	for i, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			parts[i] = "{+" + d.Text + "+}"
		case diffpatch.DiffDelete:
			parts[i] = "[-" + d.Text + "-]"
		default:
			parts[i] = d.Text
		}
	}
	return strings.Join(parts, sep)
}
