package shapediff

import (
	"fmt"
	"strings"
)

// RenderReport formats a diff result as a readable report: additions, then
// removals, then the count of unchanged paths. When nothing was added or
// removed a single identical-structures line replaces the sections.
func RenderReport(r *Result) string {
	if r == nil {
		return ""
	}
	if r.Identical() {
		return fmt.Sprintf("structures are identical (%d paths compared)", len(r.Same))
	}

	var sb strings.Builder
	sb.WriteString("Added:\n")
	writeSection(&sb, "+", r.Added)
	sb.WriteString("Removed:\n")
	writeSection(&sb, "-", r.Removed)
	fmt.Fprintf(&sb, "%d unchanged path(s)", len(r.Same))
	return sb.String()
}

func writeSection(sb *strings.Builder, mark string, entries []Entry) {
	if len(entries) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(sb, "  %s %s (%s)\n", mark, e.Path, e.Type)
	}
}
