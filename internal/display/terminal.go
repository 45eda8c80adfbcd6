// Package display provides terminal output formatting for tubetop.
package display

import (
	"fmt"
	"strings"

	"tubetop/internal/comments"
	"tubetop/internal/extract"
	"tubetop/internal/search"
)

// previewCount is how many search results are listed before eliding the rest.
const previewCount = 5

// TerminalFormatter formats search results and extraction summaries for the
// terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// FormatSearchResults lists videos by view-count rank, showing the first few
// and a count of the remainder.
func (f *TerminalFormatter) FormatSearchResults(videos []search.Video) string {
	if len(videos) == 0 {
		return "No videos found with the specified criteria.\n"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Found %d videos, ordered by view count:", len(videos)))

	shown := len(videos)
	if shown > previewCount {
		shown = previewCount
	}
	for i := 0; i < shown; i++ {
		v := videos[i]
		lines = append(lines, fmt.Sprintf("%d. %s (%s views)", i+1, f.TruncateText(v.Title, 60), groupDigits(v.ViewCount)))
	}

	if len(videos) > previewCount {
		lines = append(lines, fmt.Sprintf("... and %d more videos", len(videos)-previewCount))
	}

	return strings.Join(lines, "\n") + "\n"
}

// FormatSummary renders the extraction-complete block with its counters.
func (f *TerminalFormatter) FormatSummary(report *extract.Report) string {
	rule := strings.Repeat("=", 50)
	lines := []string{
		rule,
		"EXTRACTION COMPLETE",
		rule,
		fmt.Sprintf("Videos processed: %d", report.Info.VideosProcessed),
		fmt.Sprintf("Videos with comments: %d", report.Info.VideosWithComments),
		fmt.Sprintf("Total comments extracted: %d", report.TotalComments()),
	}
	return strings.Join(lines, "\n") + "\n"
}

// FormatComments lists ranked comments for a single video.
func (f *TerminalFormatter) FormatComments(videoID string, top []comments.Comment) string {
	if len(top) == 0 {
		return fmt.Sprintf("No comments extracted for %s.\n", videoID)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Top %d comments for %s:", len(top), videoID))
	for i, c := range top {
		lines = append(lines, fmt.Sprintf("%d. [%s likes] %s: %s", i+1, groupDigits(c.LikeCount), c.Author, f.TruncateText(c.Text, 120)))
	}
	return strings.Join(lines, "\n") + "\n"
}

// TruncateText truncates text to maxLen, adding "..." if truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return text[:maxLen-3] + "..."
}

// groupDigits renders n with comma thousands separators.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
