package models

// EngagementStats are the personal dashboard counters.
type EngagementStats struct {
	PostsCount     int `json:"posts_count"`
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TotalLikes     int `json:"total_likes"`
	TotalComments  int `json:"total_comments"`
	TotalShares    int `json:"total_shares"`
}

// RecentPost is the compact post shape embedded in /api/dashboard/stats.
type RecentPost struct {
	ID            int64     `json:"id"`
	Content       string    `json:"content"`
	PostType      string    `json:"post_type"`
	MediaURL      string    `json:"media_url,omitempty"`
	CreatedAt     Timestamp `json:"created_at"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
}

// DashboardStats is the /api/dashboard/stats response.
type DashboardStats struct {
	User        User            `json:"user"`
	Stats       EngagementStats `json:"stats"`
	RecentPosts []RecentPost    `json:"recent_posts"`
}

// AdminTotals are the platform-wide counters on the admin panel.
type AdminTotals struct {
	TotalUsers        int `json:"total_users"`
	TotalRequirements int `json:"total_requirements"`
	TotalMessages     int `json:"total_messages"`
	TotalBusinesses   int `json:"total_businesses"`
}

// AdminRecentUser is a row in the admin panel's recent-users list.
type AdminRecentUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt Timestamp `json:"created_at"`
}

// AdminRecentRequirement is a row in the recent-requirements list.
type AdminRecentRequirement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Sector    string    `json:"sector,omitempty"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt Timestamp `json:"created_at"`
}

// AdminRecentMessage is a row in the recent-messages list. Content is
// truncated server-side.
type AdminRecentMessage struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	CreatedAt  Timestamp `json:"created_at"`
}

// AdminStats is the /api/admin/stats response.
type AdminStats struct {
	Stats              AdminTotals              `json:"stats"`
	RecentUsers        []AdminRecentUser        `json:"recent_users"`
	RecentRequirements []AdminRecentRequirement `json:"recent_requirements"`
	RecentMessages     []AdminRecentMessage     `json:"recent_messages"`
}
