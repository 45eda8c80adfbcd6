// Package search turns the paginated keyword-search API into a bounded,
// view-count-ranked list of videos.
package search

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"tubetop/internal/daterange"
	"tubetop/internal/youtube"
)

// maxPageSize is the largest page the search API accepts.
const maxPageSize = 50

// VideoLister is the slice of the YouTube client the aggregator needs.
type VideoLister interface {
	SearchVideos(ctx context.Context, q youtube.SearchQuery) (*youtube.SearchPage, error)
	FetchStatistics(ctx context.Context, videoIDs []string) (map[string]youtube.VideoStatistics, error)
}

// Video is one search result joined with its statistics. Built once by the
// aggregator and not mutated afterwards.
type Video struct {
	ID           string    `json:"video_id"`
	Title        string    `json:"title"`
	Channel      string    `json:"channel"`
	ChannelID    string    `json:"channel_id"`
	PublishedAt  time.Time `json:"published_at"`
	Description  string    `json:"description"`
	Thumbnail    string    `json:"thumbnail"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

// Aggregator paginates keyword searches and joins each page with a batched
// statistics lookup.
type Aggregator struct {
	client VideoLister
	log    *zap.Logger
}

// New creates an Aggregator.
func New(client VideoLister, log *zap.Logger) *Aggregator {
	return &Aggregator{client: client, log: log}
}

// Search returns videos matching keyword within the optional window, sorted
// by view count descending. The page loop stops once maxResults is reached,
// so the result can exceed maxResults by up to one page when the final page
// overshoots. On a request failure the accumulated videos are returned as-is
// rather than propagating the error.
func (a *Aggregator) Search(ctx context.Context, keyword string, maxResults int, window daterange.Range) []Video {
	videos := make([]Video, 0, maxResults)
	pageToken := ""

	for len(videos) < maxResults {
		remaining := maxResults - len(videos)
		pageSize := remaining
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		page, err := a.client.SearchVideos(ctx, youtube.SearchQuery{
			Keyword:         keyword,
			PageSize:        pageSize,
			PublishedAfter:  window.After,
			PublishedBefore: window.Before,
			PageToken:       pageToken,
		})
		if err != nil {
			a.log.Warn("video search aborted, returning partial results",
				zap.String("keyword", keyword),
				zap.Int("accumulated", len(videos)),
				zap.Error(err))
			break
		}

		joined, err := a.joinStatistics(ctx, page.Items)
		if err != nil {
			a.log.Warn("statistics lookup failed, returning partial results",
				zap.String("keyword", keyword),
				zap.Int("accumulated", len(videos)),
				zap.Error(err))
			break
		}
		videos = append(videos, joined...)

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	// Stable sort: ties keep API arrival order
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].ViewCount > videos[j].ViewCount
	})

	return videos
}

// joinStatistics pairs one page of search results with a single batched
// statistics call. A video missing from the statistics response (removed
// since indexing) keeps zero counts.
func (a *Aggregator) joinStatistics(ctx context.Context, items []youtube.SearchResult) ([]Video, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.VideoID)
	}

	stats, err := a.client.FetchStatistics(ctx, ids)
	if err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(items))
	for _, item := range items {
		s := stats[item.VideoID]
		videos = append(videos, Video{
			ID:           item.VideoID,
			Title:        item.Title,
			Channel:      item.ChannelTitle,
			ChannelID:    item.ChannelID,
			PublishedAt:  item.PublishedAt,
			Description:  item.Description,
			Thumbnail:    item.Thumbnail,
			ViewCount:    s.ViewCount,
			LikeCount:    s.LikeCount,
			CommentCount: s.CommentCount,
		})
	}

	return videos, nil
}
