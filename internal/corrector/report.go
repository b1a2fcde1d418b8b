package corrector

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// FormatReports renders the per-file report and run summary for a set of
// scan results.
func FormatReports(results []FileResult) string {
	var lines []string
	total := 0
	errs := 0

	for _, r := range results {
		switch {
		case len(r.Corrections) > 0:
			lines = append(lines, fmt.Sprintf("\n[CORRECTED] %s - %d correction(s):", r.Path, len(r.Corrections)))
		case len(r.Unresolved) > 0:
			lines = append(lines, fmt.Sprintf("\n[UNRESOLVED] %s - %d unresolved word(s):", r.Path, len(r.Unresolved)))
		case r.Err == nil:
			lines = append(lines, fmt.Sprintf("\n[OK] %s - no spelling errors found", r.Path))
		}
		for _, c := range r.Corrections {
			lines = append(lines, fmt.Sprintf("  Line %d, Col %d: '%s' -> '%s'", c.Token.Line, c.Token.Col, c.Original, c.Replacement))
		}
		for _, u := range r.Unresolved {
			lines = append(lines, fmt.Sprintf("  Line %d, Col %d: '%s' unresolved", u.Line, u.Col, u.Text))
		}
		total += len(r.Corrections)
		// a write failure still shows what the pass found above
		if r.Err != nil {
			lines = append(lines, fmt.Sprintf("\n[ERROR] %s: %v", r.Path, r.Err))
			errs++
		}
	}

	lines = append(lines, "\n--- Summary ---")
	lines = append(lines, fmt.Sprintf("Files scanned: %d", len(results)))
	lines = append(lines, fmt.Sprintf("Total corrections: %d", total))
	if errs > 0 {
		lines = append(lines, fmt.Sprintf("Files with errors: %d", errs))
	}
	return strings.Join(lines, "\n")
}

// FormatDiff renders a character-level diff between the original and
// corrected text of a file.
func FormatDiff(original, corrected string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, corrected, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
