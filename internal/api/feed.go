package api

import (
	"context"
	"fmt"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// Feed fetches one page of the social feed.
func (c *Client) Feed(ctx context.Context, limit, offset int) ([]models.Post, error) {
	var resp struct {
		Posts []models.Post `json:"posts"`
	}
	path := fmt.Sprintf("/api/feed?limit=%d&offset=%d", limit, offset)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// CreatePost publishes a new post and returns its id.
func (c *Client) CreatePost(ctx context.Context, post models.NewPost) (int64, error) {
	var resp struct {
		OK     bool  `json:"ok"`
		PostID int64 `json:"post_id"`
	}
	if err := c.postJSON(ctx, "/api/posts", post, &resp); err != nil {
		return 0, err
	}
	return resp.PostID, nil
}

// React sets, changes or removes the caller's reaction on a post. An
// empty reactionType clears an existing reaction; repeating the current
// type toggles it off server-side.
func (c *Client) React(ctx context.Context, postID int64, reactionType string) error {
	payload := map[string]string{"reaction_type": reactionType}
	return c.postJSON(ctx, fmt.Sprintf("/api/posts/%d/reactions", postID), payload, nil)
}

// Comments returns a post's top-level comments with replies.
func (c *Client) Comments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/posts/%d/comments", postID), &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// AddComment posts a comment. parentID of zero makes a top-level comment.
func (c *Client) AddComment(ctx context.Context, postID int64, content string, parentID int64) (int64, error) {
	payload := map[string]interface{}{"content": content}
	if parentID != 0 {
		payload["parent_comment_id"] = parentID
	}
	var resp struct {
		OK        bool  `json:"ok"`
		CommentID int64 `json:"comment_id"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/api/posts/%d/comments", postID), payload, &resp); err != nil {
		return 0, err
	}
	return resp.CommentID, nil
}
