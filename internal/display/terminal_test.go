package display

import (
	"strings"
	"testing"

	"tubetop/internal/comments"
	"tubetop/internal/extract"
	"tubetop/internal/search"
)

func video(id, title string, views int64) search.Video {
	return search.Video{ID: id, Title: title, Channel: "Chan", ViewCount: views}
}

func TestFormatSearchResults_ShowsTitlesAndViewCounts(t *testing.T) {
	output := NewTerminalFormatter().FormatSearchResults([]search.Video{
		video("v1", "How to Build CLI Tools in Go", 1234567),
	})

	if !strings.Contains(output, "How to Build CLI Tools in Go") {
		t.Error("user should see video title in terminal output")
	}
	if !strings.Contains(output, "1,234,567 views") {
		t.Errorf("user should see grouped view count, got:\n%s", output)
	}
}

func TestFormatSearchResults_ElidesBeyondFive(t *testing.T) {
	videos := make([]search.Video, 8)
	for i := range videos {
		videos[i] = video("v", "Video", int64(100-i))
	}

	output := NewTerminalFormatter().FormatSearchResults(videos)

	if !strings.Contains(output, "Found 8 videos") {
		t.Errorf("expected total count, got:\n%s", output)
	}
	if !strings.Contains(output, "... and 3 more videos") {
		t.Errorf("expected elision line, got:\n%s", output)
	}
	if strings.Contains(output, "6.") {
		t.Error("only the top five results should be listed")
	}
}

func TestFormatSearchResults_Empty(t *testing.T) {
	output := NewTerminalFormatter().FormatSearchResults(nil)

	if !strings.Contains(output, "No videos found") {
		t.Errorf("expected no-results message, got:\n%s", output)
	}
}

func TestFormatSummary_ShowsCounters(t *testing.T) {
	report := &extract.Report{
		Info: extract.Info{VideosProcessed: 4, VideosWithComments: 3},
		Videos: []extract.VideoResult{
			{CommentsExtracted: 5},
			{CommentsExtracted: 2},
		},
	}

	output := NewTerminalFormatter().FormatSummary(report)

	for _, want := range []string{
		"EXTRACTION COMPLETE",
		"Videos processed: 4",
		"Videos with comments: 3",
		"Total comments extracted: 7",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in summary, got:\n%s", want, output)
		}
	}
}

func TestFormatComments_RanksAndTruncates(t *testing.T) {
	top := []comments.Comment{
		{Author: "Alice", Text: strings.Repeat("x", 200), LikeCount: 1000},
		{Author: "Bob", Text: "short", LikeCount: 3},
	}

	output := NewTerminalFormatter().FormatComments("video123", top)

	if !strings.Contains(output, "1. [1,000 likes] Alice") {
		t.Errorf("expected ranked first comment, got:\n%s", output)
	}
	if !strings.Contains(output, "2. [3 likes] Bob: short") {
		t.Errorf("expected ranked second comment, got:\n%s", output)
	}
	if strings.Contains(output, strings.Repeat("x", 200)) {
		t.Error("long comment text should be truncated")
	}
}

func TestTruncateText(t *testing.T) {
	f := NewTerminalFormatter()

	if got := f.TruncateText("short", 60); got != "short" {
		t.Errorf("short text must pass through, got %q", got)
	}
	if got := f.TruncateText("abcdefghij", 8); got != "abcde..." {
		t.Errorf("expected truncation with ellipsis, got %q", got)
	}
}
