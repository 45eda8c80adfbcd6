// Package extract drives the comment ranker over a ranked list of videos and
// assembles the extraction report.
package extract

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tubetop/internal/comments"
	"tubetop/internal/search"
)

// CommentRanker returns the top comments of a single video.
type CommentRanker interface {
	TopByLikes(ctx context.Context, videoID string, limit int) []comments.Comment
}

// Info holds the extraction counters.
type Info struct {
	VideosProcessed    int       `json:"total_videos_processed"`
	VideosWithComments int       `json:"videos_with_comments"`
	ExtractedAt        time.Time `json:"extraction_date"`
	CommentsPerVideo   int       `json:"top_comments_per_video"`
}

// VideoResult pairs one video with its ranked comments.
type VideoResult struct {
	Video             search.Video       `json:"video_info"`
	TopComments       []comments.Comment `json:"top_comments"`
	CommentsExtracted int                `json:"comments_extracted"`
}

// Report is the full result of one extraction run. Videos appear in the same
// order the aggregator produced them, so rank = position + 1.
type Report struct {
	Info   Info          `json:"extraction_info"`
	Videos []VideoResult `json:"videos"`
}

// TotalComments sums the extracted comment counts over all videos.
func (r *Report) TotalComments() int {
	total := 0
	for _, v := range r.Videos {
		total += v.CommentsExtracted
	}
	return total
}

// Extractor processes videos strictly sequentially, pacing requests with a
// fixed inter-video delay. The delay is a politeness throttle for the API
// quota, not a correctness mechanism.
type Extractor struct {
	ranker  CommentRanker
	limiter *rate.Limiter
	log     *zap.Logger
}

// New creates an Extractor. A zero or negative delay disables pacing (used in
// tests).
func New(ranker CommentRanker, delay time.Duration, log *zap.Logger) *Extractor {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Extractor{
		ranker:  ranker,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// Run ranks the comments of every video in order and returns the assembled
// report. A ranker failure on one video yields an empty comment list for it
// and does not affect the videos that follow.
func (e *Extractor) Run(ctx context.Context, videos []search.Video, perVideo int) *Report {
	report := &Report{
		Info: Info{
			ExtractedAt:      time.Now(),
			CommentsPerVideo: perVideo,
		},
		Videos: make([]VideoResult, 0, len(videos)),
	}

	for i, video := range videos {
		if err := e.limiter.Wait(ctx); err != nil {
			e.log.Warn("extraction interrupted", zap.Error(err))
			break
		}

		e.log.Info("processing video",
			zap.Int("position", i+1),
			zap.Int("total", len(videos)),
			zap.String("video_id", video.ID),
			zap.String("title", video.Title))

		top := e.ranker.TopByLikes(ctx, video.ID, perVideo)

		report.Videos = append(report.Videos, VideoResult{
			Video:             video,
			TopComments:       top,
			CommentsExtracted: len(top),
		})

		report.Info.VideosProcessed++
		if len(top) > 0 {
			report.Info.VideosWithComments++
		}

		e.log.Info("extracted top comments",
			zap.String("video_id", video.ID),
			zap.Int("count", len(top)))
	}

	return report
}
