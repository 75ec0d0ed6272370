package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackwell-systems/ideval/internal/metrics"
)

// topLargest is how many of the biggest files the markdown report lists.
const topLargest = 10

// Markdown renders a scan report as a markdown document: summary,
// files-by-type table sorted by count, and the largest files.
func Markdown(r *metrics.Report) string {
	var md []string

	md = append(md, "# Codebase Analysis Results\n")

	md = append(md, "## Summary\n")
	md = append(md, fmt.Sprintf("- Total Files: **%d**", r.TotalFiles))
	md = append(md, fmt.Sprintf("- Total Lines of Code: **%d**", r.TotalLines))
	md = append(md, fmt.Sprintf("- Test Files: **%d**", r.TestFileCount()))
	md = append(md, fmt.Sprintf("- Ignored Files: **%d**\n", r.IgnoredFiles))

	md = append(md, "## Files by Type\n")
	md = append(md, "| File Type | Count |")
	md = append(md, "|-----------|-------|")
	for _, tag := range sortedTags(r.FilesByType) {
		md = append(md, fmt.Sprintf("| %s | %d |", tag, r.FilesByType[tag]))
	}

	md = append(md, fmt.Sprintf("\n## Top %d Largest Files\n", topLargest))
	md = append(md, "| File | Lines |")
	md = append(md, "|------|-------|")
	for _, f := range largestFiles(r, topLargest) {
		md = append(md, fmt.Sprintf("| %s | %d |", f.Path, f.Lines))
	}

	return strings.Join(md, "\n") + "\n"
}

// sortedTags orders type tags by descending count, ties broken by tag
// name so rendering is reproducible.
func sortedTags(byType map[string]int) []string {
	tags := make([]string, 0, len(byType))
	for tag := range byType {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if byType[tags[i]] != byType[tags[j]] {
			return byType[tags[i]] > byType[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return tags
}

// largestFiles returns up to n entries ordered by descending line
// count, ties broken by path.
func largestFiles(r *metrics.Report, n int) []metrics.FileEntry {
	files := make([]metrics.FileEntry, len(r.FileDetails))
	copy(files, r.FileDetails)
	sort.Slice(files, func(i, j int) bool {
		if files[i].Lines != files[j].Lines {
			return files[i].Lines > files[j].Lines
		}
		return files[i].Path < files[j].Path
	})
	if len(files) > n {
		files = files[:n]
	}
	return files
}
