package models

// Platform identifies the social network a post lives on.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformSnapchat  Platform = "snapchat"
)

// Platforms lists every platform the classifier recognises, in display order.
var Platforms = []Platform{PlatformYouTube, PlatformFacebook, PlatformInstagram, PlatformSnapchat}

// String implements fmt.Stringer.
func (p Platform) String() string { return string(p) }

// DisplayName returns the human-readable platform name used in messages.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformFacebook:
		return "Facebook"
	case PlatformInstagram:
		return "Instagram"
	case PlatformSnapchat:
		return "Snapchat"
	default:
		return string(p)
	}
}

// Sentiment is the three-way polarity label attached to a comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Comment is a single public comment or reply in the uniform shape every
// fetcher produces. Sentiment and Score are empty until the scorer runs.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Platform  Platform  `json:"platform"`
	Author    string    `json:"author,omitempty"`
	Likes     int64     `json:"likes"`
	Timestamp string    `json:"timestamp,omitempty"` // RFC3339 as reported upstream
	IsReply   bool      `json:"isReply,omitempty"`
	ParentID  string    `json:"parentId,omitempty"` // id of the top-level comment
	Sentiment Sentiment `json:"sentiment"`
	Score     float64   `json:"score"`
}
