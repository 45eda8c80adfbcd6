// Package export flattens an extraction report into a three-sheet xlsx
// workbook: one row per comment, one row per video, and a summary of the
// extraction counters.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"tubetop/internal/extract"
)

// ErrNoData signals a report with zero comment rows; nothing is written.
var ErrNoData = errors.New("no comments to export")

const (
	detailSheet   = "Top_Comments"
	overviewSheet = "Video_Overview"
	summarySheet  = "Summary"

	extension = ".xlsx"
)

// WriteReport writes report to an xlsx workbook and returns the path written.
// An empty filename gets a timestamped default; a filename without the xlsx
// extension gets it appended. Returns ErrNoData when the report holds no
// comments at all.
func WriteReport(report *extract.Report, filename string) (string, error) {
	if report.TotalComments() == 0 {
		return "", ErrNoData
	}

	if filename == "" {
		filename = fmt.Sprintf("youtube_top_comments_%s%s", time.Now().Format("20060102_150405"), extension)
	} else if !strings.HasSuffix(filename, extension) {
		filename += extension
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the detail sheet
	if err := f.SetSheetName(f.GetSheetName(0), detailSheet); err != nil {
		return "", fmt.Errorf("failed to prepare workbook: %w", err)
	}

	if err := writeDetailSheet(f, report); err != nil {
		return "", err
	}
	if err := writeOverviewSheet(f, report); err != nil {
		return "", err
	}
	if err := writeSummarySheet(f, report); err != nil {
		return "", err
	}

	if err := f.SaveAs(filename); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return filename, nil
}

func writeDetailSheet(f *excelize.File, report *extract.Report) error {
	header := []interface{}{
		"Video_Rank", "Video_ID", "Video_Title", "Channel_Name",
		"Video_Views", "Video_Likes", "Video_Published",
		"Comment_Rank", "Comment_ID", "Comment_Author", "Comment_Text",
		"Comment_Likes", "Comment_Published", "Reply_Count",
	}
	if err := setRow(f, detailSheet, 1, header); err != nil {
		return err
	}

	row := 2
	for videoRank, result := range report.Videos {
		video := result.Video
		for commentRank, comment := range result.TopComments {
			err := setRow(f, detailSheet, row, []interface{}{
				videoRank + 1,
				video.ID,
				video.Title,
				video.Channel,
				video.ViewCount,
				video.LikeCount,
				formatTime(video.PublishedAt),
				commentRank + 1,
				comment.CommentID,
				comment.Author,
				comment.Text,
				comment.LikeCount,
				formatTime(comment.PublishedAt),
				comment.ReplyCount,
			})
			if err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeOverviewSheet(f *excelize.File, report *extract.Report) error {
	if _, err := f.NewSheet(overviewSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", overviewSheet, err)
	}

	header := []interface{}{
		"Rank", "Video_ID", "Title", "Channel", "Views", "Likes",
		"Comments_Count", "Published", "Comments_Extracted",
	}
	if err := setRow(f, overviewSheet, 1, header); err != nil {
		return err
	}

	for i, result := range report.Videos {
		video := result.Video
		err := setRow(f, overviewSheet, i+2, []interface{}{
			i + 1,
			video.ID,
			video.Title,
			video.Channel,
			video.ViewCount,
			video.LikeCount,
			video.CommentCount,
			formatTime(video.PublishedAt),
			result.CommentsExtracted,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, report *extract.Report) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", summarySheet, err)
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Videos Processed", report.Info.VideosProcessed},
		{"Videos with Comments", report.Info.VideosWithComments},
		{"Total Comments Extracted", report.TotalComments()},
		{"Extraction Date", report.Info.ExtractedAt.Format("2006-01-02 15:04:05")},
		{"Comments per Video", report.Info.CommentsPerVideo},
	}
	for i, row := range rows {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
