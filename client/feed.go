package client

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/notify"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/state"
)

// FeedController owns feed pagination, the live-update poll and per-post
// interactions.
type FeedController struct {
	api      *api.Client
	store    *state.FeedStore
	pub      Publisher
	notifier *notify.Notifier

	pageSize     int
	pollInterval time.Duration

	// onOpenMessages jumps to the messages view for share-by-message.
	onOpenMessages func(ctx context.Context)

	mu          sync.Mutex
	loading     bool // reentrancy guard: concurrent loads are dropped
	offset      int
	hasMore     bool
	pollStarted bool

	stopPoll chan struct{}
}

// NewFeedController creates the controller with an empty store.
func NewFeedController(apiClient *api.Client, store *state.FeedStore, pub Publisher, notifier *notify.Notifier, pageSize int, pollInterval time.Duration) *FeedController {
	return &FeedController{
		api:          apiClient,
		store:        store,
		pub:          pub,
		notifier:     notifier,
		pageSize:     pageSize,
		pollInterval: pollInterval,
		hasMore:      true,
		stopPoll:     make(chan struct{}),
	}
}

// Load fetches the next page and appends it. A call arriving while a
// load is in flight is dropped, not queued. The first successful load
// arms the live-update poll.
func (f *FeedController) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	offset := f.offset
	f.mu.Unlock()

	posts, err := f.api.Feed(ctx, f.pageSize, offset)

	f.mu.Lock()
	f.loading = false
	if err != nil {
		f.mu.Unlock()
		toast(f.pub, levelError, "Failed to load feed")
		return err
	}

	f.store.Append(posts)
	f.offset += len(posts)
	// A short page means end-of-feed. A short page exactly at the
	// boundary is indistinguishable from exhaustion; that ambiguity is
	// part of the server contract.
	f.hasMore = len(posts) >= f.pageSize
	firstLoad := !f.pollStarted
	if firstLoad {
		f.pollStarted = true
	}
	f.mu.Unlock()

	f.publishFeed()

	if firstLoad {
		go f.poll()
	}
	return nil
}

// Reload resets the cursor and store and fetches page one, used when
// entering the feed view or after creating a post.
func (f *FeedController) Reload(ctx context.Context) error {
	f.mu.Lock()
	f.offset = 0
	f.hasMore = true
	f.mu.Unlock()
	f.store.Reset()
	return f.Load(ctx)
}

// Offset returns the current pagination cursor.
func (f *FeedController) Offset() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offset
}

// HasMore reports whether the load-more control should be shown.
func (f *FeedController) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// Close stops the live-update poll at process shutdown. Leaving the feed
// view does not stop it.
func (f *FeedController) Close() {
	close(f.stopPoll)
}

func (f *FeedController) poll() {
	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			f.checkForNewPosts(context.Background())
		case <-f.stopPoll:
			return
		}
	}
}

// checkForNewPosts fetches page one and prepends only posts whose ids
// are not already in the store, newest first.
func (f *FeedController) checkForNewPosts(ctx context.Context) {
	posts, err := f.api.Feed(ctx, f.pageSize, 0)
	if err != nil {
		log.Printf("Feed poll failed: %v", err)
		return
	}

	fresh := f.store.PrependUnseen(posts)
	if len(fresh) == 0 {
		return
	}

	f.pub.Publish(protocol.TypeNewPosts, protocol.NewPostsEvent{
		Posts: fresh,
		Count: len(fresh),
	})
	plural := ""
	if len(fresh) > 1 {
		plural = "s"
	}
	toast(f.pub, levelInfo, fmt.Sprintf("%d new post%s available!", len(fresh), plural))
	f.notifier.NewPosts(ctx, len(fresh))
}

// React posts a reaction, then re-fetches the post so the displayed
// counts always reflect server state rather than a local increment.
func (f *FeedController) React(ctx context.Context, postID int64, reactionType string) error {
	if err := f.api.React(ctx, postID, reactionType); err != nil {
		toast(f.pub, levelError, "Failed to react to post")
		return err
	}
	f.refreshPost(ctx, postID)
	return nil
}

// refreshPost re-fetches page one and replaces the single stored post.
// A post no longer on page one keeps its stale rendering until the next
// full load.
func (f *FeedController) refreshPost(ctx context.Context, postID int64) {
	posts, err := f.api.Feed(ctx, f.pageSize, 0)
	if err != nil {
		log.Printf("Failed to refresh post %d: %v", postID, err)
		return
	}
	for _, p := range posts {
		if p.ID != postID {
			continue
		}
		if f.store.Replace(p) {
			f.pub.Publish(protocol.TypePostUpdated, p)
		}
		return
	}
}

// OnOpenMessages registers the hook run when a post is shared via
// direct message.
func (f *FeedController) OnOpenMessages(fn func(ctx context.Context)) {
	f.onOpenMessages = fn
}

// Share handles the post share options. Sharing is entirely
// client-side: copy puts a deep link on the clipboard through the UI,
// message jumps to the messages view.
func (f *FeedController) Share(ctx context.Context, postID int64, shareType string) {
	if !f.store.Contains(postID) {
		return
	}
	url := fmt.Sprintf("%s/post/%d", f.api.BaseURL(), postID)

	switch shareType {
	case "copy":
		f.pub.Publish(protocol.TypeShareLink, protocol.ShareLinkEvent{PostID: postID, URL: url})
		toast(f.pub, levelSuccess, "Post link copied to clipboard!")
	case "message":
		toast(f.pub, levelInfo, "Redirecting to messages...")
		if f.onOpenMessages != nil {
			f.onOpenMessages(ctx)
		}
	case "connection":
		f.pub.Publish(protocol.TypeShareLink, protocol.ShareLinkEvent{PostID: postID, URL: url})
		toast(f.pub, levelSuccess, "Post link copied! Share it with your connections.")
	default:
		toast(f.pub, levelInfo, "Share option not implemented yet")
	}
}

// LoadComments fetches a post's comments on demand; they are not cached
// across toggles.
func (f *FeedController) LoadComments(ctx context.Context, postID int64) error {
	comments, err := f.api.Comments(ctx, postID)
	if err != nil {
		log.Printf("Failed to load comments for post %d: %v", postID, err)
		return err
	}
	f.pub.Publish(protocol.TypeComments, protocol.CommentsEvent{
		PostID:   postID,
		Comments: comments,
	})
	return nil
}

// AddComment posts a comment and reloads the post's comment list. An
// empty trimmed comment is dropped without a network call.
func (f *FeedController) AddComment(ctx context.Context, postID int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	if _, err := f.api.AddComment(ctx, postID, content, 0); err != nil {
		toast(f.pub, levelError, "Failed to add comment")
		return err
	}
	toast(f.pub, levelSuccess, "Comment added!")
	return f.LoadComments(ctx, postID)
}

// CreatePost validates, uploads the optional media file, publishes the
// post, and reloads the feed from the top.
func (f *FeedController) CreatePost(ctx context.Context, post models.NewPost, media io.Reader, mediaName string, mediaSize int64) error {
	post.Content = strings.TrimSpace(post.Content)
	post.ArticleTitle = strings.TrimSpace(post.ArticleTitle)
	if post.Content == "" && media == nil && post.ArticleTitle == "" {
		toast(f.pub, levelError, "Please enter some content or upload a file")
		return ErrMissingFields
	}

	if media != nil && (post.PostType == models.PostTypeImage || post.PostType == models.PostTypeVideo) {
		fileType, err := api.ValidateUpload(mediaName, mediaSize)
		if err != nil {
			toast(f.pub, levelError, err.Error())
			return err
		}
		url, err := f.api.Upload(ctx, mediaName, fileType, media)
		if err != nil {
			toast(f.pub, levelError, "Failed to upload file")
			return err
		}
		post.MediaURL = url
	}

	if _, err := f.api.CreatePost(ctx, post); err != nil {
		toast(f.pub, levelError, "Failed to create post")
		return err
	}

	toast(f.pub, levelSuccess, "Post created successfully!")
	return f.Reload(ctx)
}

func (f *FeedController) publishFeed() {
	f.mu.Lock()
	hasMore := f.hasMore
	offset := f.offset
	f.mu.Unlock()
	f.pub.Publish(protocol.TypeFeed, protocol.FeedEvent{
		Posts:       f.store.Posts(),
		HasMore:     hasMore,
		TotalLoaded: offset,
	})
}
