// Package youtube provides a client for the YouTube Data API v3.
//
// This package enables tubetop to:
// - Search videos by keyword within an optional publish-time window
// - Fetch view/like/comment statistics for a batch of videos
// - List the top-level comment threads of a video
package youtube

import "time"

// unknownAuthorChannel is substituted when a comment carries no author channel ID.
const unknownAuthorChannel = "N/A"

// SearchQuery describes one page of a keyword search.
type SearchQuery struct {
	Keyword         string
	PageSize        int
	PublishedAfter  string
	PublishedBefore string
	PageToken       string
}

// SearchResult is one video returned by a keyword search. Statistics are not
// included; they come from a separate FetchStatistics call.
type SearchResult struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	ChannelTitle string    `json:"channel_title"`
	ChannelID    string    `json:"channel_id"`
	Description  string    `json:"description"`
	Thumbnail    string    `json:"thumbnail"`
	PublishedAt  time.Time `json:"published_at"`
}

// SearchPage is one page of search results. NextPageToken is empty on the
// last page.
type SearchPage struct {
	Items         []SearchResult
	NextPageToken string
}

// VideoStatistics holds the engagement counts of a single video.
type VideoStatistics struct {
	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// CommentThread is a top-level comment on a video plus its reply count.
// Replies themselves are not extracted.
type CommentThread struct {
	CommentID       string    `json:"comment_id"`
	Author          string    `json:"author"`
	AuthorChannelID string    `json:"author_channel_id"`
	Text            string    `json:"text"`
	LikeCount       int64     `json:"like_count"`
	PublishedAt     time.Time `json:"published_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	ReplyCount      int64     `json:"reply_count"`
}

// CommentPage is one page of comment threads.
type CommentPage struct {
	Items         []CommentThread
	NextPageToken string
}
