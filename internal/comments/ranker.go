// Package comments retrieves the most-liked top-level comments of a video.
//
// The platform orders comment threads by "relevance", which is not the same
// as "most liked", so the ranker over-fetches a wider candidate pool and
// sorts it by like count before trimming to the requested size.
package comments

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"tubetop/internal/youtube"
)

const (
	// overFetchFactor widens the candidate pool relative to the requested
	// top-N.
	overFetchFactor = 5
	// maxPageSize is the largest page the commentThreads API accepts, and
	// also the cap on the candidate pool.
	maxPageSize = 100
)

// ThreadLister is the slice of the YouTube client the ranker needs.
type ThreadLister interface {
	FetchCommentThreads(ctx context.Context, videoID string, pageSize int, pageToken string) (*youtube.CommentPage, error)
}

// Comment is one ranked top-level comment. Built once and not mutated.
type Comment struct {
	VideoID         string    `json:"video_id"`
	CommentID       string    `json:"comment_id"`
	Author          string    `json:"author"`
	AuthorChannelID string    `json:"author_channel_id"`
	Text            string    `json:"text"`
	LikeCount       int64     `json:"like_count"`
	PublishedAt     time.Time `json:"published_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	ReplyCount      int64     `json:"reply_count"`
}

// Ranker paginates a video's comment threads and ranks them by like count.
type Ranker struct {
	client ThreadLister
	log    *zap.Logger
}

// NewRanker creates a Ranker.
func NewRanker(client ThreadLister, log *zap.Logger) *Ranker {
	return &Ranker{client: client, log: log}
}

// TopByLikes returns up to limit comments for videoID, sorted by like count
// descending. Platform failures never propagate: disabled comments, missing
// or private videos, and any other API failure are logged with their reason
// and yield an empty (non-nil) slice so the caller can move on to the next
// video.
func (r *Ranker) TopByLikes(ctx context.Context, videoID string, limit int) []Comment {
	fetchTarget := limit * overFetchFactor
	if fetchTarget > maxPageSize {
		fetchTarget = maxPageSize
	}

	candidates := make([]Comment, 0, fetchTarget)
	pageToken := ""

	for len(candidates) < fetchTarget {
		remaining := fetchTarget - len(candidates)
		pageSize := remaining
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		page, err := r.client.FetchCommentThreads(ctx, videoID, pageSize, pageToken)
		if err != nil {
			r.logFailure(videoID, err)
			return []Comment{}
		}

		for _, thread := range page.Items {
			candidates = append(candidates, Comment{
				VideoID:         videoID,
				CommentID:       thread.CommentID,
				Author:          thread.Author,
				AuthorChannelID: thread.AuthorChannelID,
				Text:            thread.Text,
				LikeCount:       thread.LikeCount,
				PublishedAt:     thread.PublishedAt,
				UpdatedAt:       thread.UpdatedAt,
				ReplyCount:      thread.ReplyCount,
			})
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].LikeCount > candidates[j].LikeCount
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func (r *Ranker) logFailure(videoID string, err error) {
	var apiErr *youtube.APIError
	switch {
	case youtube.HasReason(err, youtube.ReasonCommentsDisabled):
		r.log.Warn("comments disabled for video", zap.String("video_id", videoID))
	case youtube.HasReason(err, youtube.ReasonVideoNotFound):
		r.log.Warn("video not found or private", zap.String("video_id", videoID))
	case errors.As(err, &apiErr):
		r.log.Warn("failed to retrieve comments",
			zap.String("video_id", videoID),
			zap.String("reason", apiErr.Reason),
			zap.Error(err))
	default:
		r.log.Warn("failed to retrieve comments",
			zap.String("video_id", videoID),
			zap.Error(err))
	}
}
