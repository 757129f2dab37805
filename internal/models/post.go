package models

// Post types understood by the feed.
const (
	PostTypeText    = "text"
	PostTypeImage   = "image"
	PostTypeVideo   = "video"
	PostTypeArticle = "article"
)

// Author identifies who wrote a post or comment.
type Author struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Post is a feed entry as returned by /api/feed.
type Post struct {
	ID             int64          `json:"id"`
	Content        string         `json:"content"`
	PostType       string         `json:"post_type"`
	MediaURL       string         `json:"media_url,omitempty"`
	MediaThumbnail string         `json:"media_thumbnail,omitempty"`
	ArticleTitle   string         `json:"article_title,omitempty"`
	ArticleSummary string         `json:"article_summary,omitempty"`
	CreatedAt      Timestamp      `json:"created_at"`
	Author         Author         `json:"author"`
	Reactions      map[string]int `json:"reactions"`
	UserReaction   string         `json:"user_reaction,omitempty"`
	CommentsCount  int            `json:"comments_count"`
}

// TotalReactions sums the per-type reaction counts.
func (p *Post) TotalReactions() int {
	total := 0
	for _, n := range p.Reactions {
		total += n
	}
	return total
}

// NewPost is the payload for POST /api/posts.
type NewPost struct {
	Content        string `json:"content"`
	PostType       string `json:"post_type"`
	MediaURL       string `json:"media_url,omitempty"`
	ArticleTitle   string `json:"article_title,omitempty"`
	ArticleSummary string `json:"article_summary,omitempty"`
}

// Comment is a top-level post comment with its replies.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"created_at"`
	Author    Author    `json:"author"`
	Replies   []Comment `json:"replies,omitempty"`
}

// OwnPost is a dashboard row from /api/dashboard/posts, including the
// engagement totals the feed shape does not carry.
type OwnPost struct {
	ID              int64          `json:"id"`
	Content         string         `json:"content"`
	PostType        string         `json:"post_type"`
	MediaURL        string         `json:"media_url,omitempty"`
	ArticleTitle    string         `json:"article_title,omitempty"`
	ArticleSummary  string         `json:"article_summary,omitempty"`
	CreatedAt       Timestamp      `json:"created_at"`
	Reactions       map[string]int `json:"reactions"`
	CommentsCount   int            `json:"comments_count"`
	TotalEngagement int            `json:"total_engagement"`
}
