package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com"

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// Client is a YouTube Data API client authenticated with an API key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a new YouTube API client. The API key must come from
// configuration; it is never embedded in source.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SearchVideos requests one page of keyword search results, ordered by
// platform relevance.
func (c *Client) SearchVideos(ctx context.Context, q SearchQuery) (*SearchPage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", q.Keyword)
	params.Set("type", "video")
	params.Set("order", "relevance")
	params.Set("maxResults", strconv.Itoa(q.PageSize))
	if q.PublishedAfter != "" {
		params.Set("publishedAfter", q.PublishedAfter)
	}
	if q.PublishedBefore != "" {
		params.Set("publishedBefore", q.PublishedBefore)
	}
	if q.PageToken != "" {
		params.Set("pageToken", q.PageToken)
	}

	body, err := c.doRequest(ctx, "/youtube/v3/search", params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	page := &SearchPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		page.Items = append(page.Items, SearchResult{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			ChannelID:    item.Snippet.ChannelID,
			Description:  item.Snippet.Description,
			Thumbnail:    item.Snippet.Thumbnails.Default.URL,
			PublishedAt:  publishedAt,
		})
	}

	return page, nil
}

// FetchStatistics retrieves view/like/comment counts for a batch of videos in
// one call. Videos absent from the response (removed or private) are simply
// missing from the returned map.
func (c *Client) FetchStatistics(ctx context.Context, videoIDs []string) (map[string]VideoStatistics, error) {
	if len(videoIDs) == 0 {
		return map[string]VideoStatistics{}, nil
	}

	params := url.Values{}
	params.Set("part", "statistics")
	params.Set("id", strings.Join(videoIDs, ","))

	body, err := c.doRequest(ctx, "/youtube/v3/videos", params)
	if err != nil {
		return nil, err
	}

	var resp videosResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse videos response: %w", err)
	}

	stats := make(map[string]VideoStatistics, len(resp.Items))
	for _, item := range resp.Items {
		viewCount, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
		likeCount, _ := strconv.ParseInt(item.Statistics.LikeCount, 10, 64)
		commentCount, _ := strconv.ParseInt(item.Statistics.CommentCount, 10, 64)
		stats[item.ID] = VideoStatistics{
			ViewCount:    viewCount,
			LikeCount:    likeCount,
			CommentCount: commentCount,
		}
	}

	return stats, nil
}

// FetchCommentThreads requests one page of a video's comment threads, ordered
// by platform relevance. Only the top-level comment of each thread is
// returned.
func (c *Client) FetchCommentThreads(ctx context.Context, videoID string, pageSize int, pageToken string) (*CommentPage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("order", "relevance")
	params.Set("maxResults", strconv.Itoa(pageSize))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	body, err := c.doRequest(ctx, "/youtube/v3/commentThreads", params)
	if err != nil {
		return nil, err
	}

	var resp commentThreadsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse comment threads response: %w", err)
	}

	page := &CommentPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		snippet := item.Snippet.TopLevelComment.Snippet

		authorChannelID := snippet.AuthorChannelID.Value
		if authorChannelID == "" {
			authorChannelID = unknownAuthorChannel
		}

		publishedAt, _ := time.Parse(time.RFC3339, snippet.PublishedAt)
		updatedAt, _ := time.Parse(time.RFC3339, snippet.UpdatedAt)

		page.Items = append(page.Items, CommentThread{
			CommentID:       item.Snippet.TopLevelComment.ID,
			Author:          snippet.AuthorDisplayName,
			AuthorChannelID: authorChannelID,
			Text:            snippet.TextDisplay,
			LikeCount:       snippet.LikeCount,
			PublishedAt:     publishedAt,
			UpdatedAt:       updatedAt,
			ReplyCount:      item.Snippet.TotalReplyCount,
		})
	}

	return page, nil
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// parseAPIError decodes the platform's structured error body. The reason code
// of the first error entry is what callers branch on; a body that does not
// decode still yields an APIError with the status code.
func (c *Client) parseAPIError(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}

	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		apiErr.Message = resp.Error.Message
		if len(resp.Error.Errors) > 0 {
			apiErr.Reason = resp.Error.Errors[0].Reason
		}
	}

	return apiErr
}

// API response types (private - implementation detail)

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

type videosResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type commentThreadsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment struct {
				ID      string `json:"id"`
				Snippet struct {
					AuthorDisplayName string `json:"authorDisplayName"`
					AuthorChannelID   struct {
						Value string `json:"value"`
					} `json:"authorChannelId"`
					TextDisplay string `json:"textDisplay"`
					LikeCount   int64  `json:"likeCount"`
					PublishedAt string `json:"publishedAt"`
					UpdatedAt   string `json:"updatedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
			TotalReplyCount int64 `json:"totalReplyCount"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
