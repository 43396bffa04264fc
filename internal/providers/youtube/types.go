package youtube

// --- YouTube Data API v3 response types ---

// threadListResponse is the commentThreads.list payload.
type threadListResponse struct {
	Items         []commentThread `json:"items"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

type commentThread struct {
	ID      string `json:"id"`
	Snippet struct {
		TopLevelComment struct {
			ID      string         `json:"id"`
			Snippet commentSnippet `json:"snippet"`
		} `json:"topLevelComment"`
		TotalReplyCount int64 `json:"totalReplyCount"`
	} `json:"snippet"`
}

// commentListResponse is the comments.list payload used for replies.
type commentListResponse struct {
	Items []struct {
		ID      string         `json:"id"`
		Snippet commentSnippet `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

type commentSnippet struct {
	TextDisplay       string `json:"textDisplay"`
	AuthorDisplayName string `json:"authorDisplayName"`
	LikeCount         int64  `json:"likeCount"`
	PublishedAt       string `json:"publishedAt"`
	ParentID          string `json:"parentId,omitempty"`
}
