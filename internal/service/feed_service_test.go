package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yatube/internal/cache"
	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePosts(n int) []models.Post {
	posts := make([]models.Post, n)
	for i := range posts {
		posts[i] = models.Post{
			ID:     uint(n - i),
			Text:   fmt.Sprintf("post %d", n-i),
			UserID: 1,
		}
	}
	return posts
}

func newFeedService(posts *postRepoStub, users *userRepoStub, follows *followRepoStub, c FeedCache) *FeedService {
	return NewFeedService(posts, users, noopGroupRepo(), follows, c, 20*time.Second)
}

func TestGlobalFeed_FifteenPostsSplitTenFive(t *testing.T) {
	repo := noopPostRepo()
	repo.listAllFn = func(_ context.Context) ([]models.Post, error) {
		return makePosts(15), nil
	}
	svc := newFeedService(repo, noopUserRepo(), noopFollowRepo(), nil)
	ctx := context.Background()

	page1, err := svc.GlobalFeed(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Posts, 10)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 15, page1.TotalCount)
	assert.False(t, page1.HasPrev)
	assert.True(t, page1.HasNext)
	assert.Equal(t, "post 15", page1.Posts[0].Text)

	page2, err := svc.GlobalFeed(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Posts, 5)
	assert.True(t, page2.HasPrev)
	assert.False(t, page2.HasNext)
	assert.Equal(t, "post 5", page2.Posts[0].Text)
}

func TestGlobalFeed_PageClamping(t *testing.T) {
	repo := noopPostRepo()
	repo.listAllFn = func(_ context.Context) ([]models.Post, error) {
		return makePosts(15), nil
	}
	svc := newFeedService(repo, noopUserRepo(), noopFollowRepo(), nil)
	ctx := context.Background()

	beyond, err := svc.GlobalFeed(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, beyond.Number)
	assert.Len(t, beyond.Posts, 5)

	below, err := svc.GlobalFeed(ctx, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, below.Number)
}

func TestGlobalFeed_EmptyFeedHasOnePage(t *testing.T) {
	repo := noopPostRepo()
	repo.listAllFn = func(_ context.Context) ([]models.Post, error) {
		return nil, nil
	}
	svc := newFeedService(repo, noopUserRepo(), noopFollowRepo(), nil)

	page, err := svc.GlobalFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestGlobalFeed_SnapshotServedUntilInvalidated(t *testing.T) {
	listed := makePosts(1)
	calls := 0
	repo := noopPostRepo()
	repo.listAllFn = func(_ context.Context) ([]models.Post, error) {
		calls++
		return listed, nil
	}
	feedCache := newMemFeedCache()
	svc := newFeedService(repo, noopUserRepo(), noopFollowRepo(), feedCache)
	ctx := context.Background()

	page, err := svc.GlobalFeed(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 1)
	assert.Equal(t, 1, calls)

	// A new post exists in storage but the cached snapshot still serves.
	listed = makePosts(2)
	page, err = svc.GlobalFeed(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 1)
	assert.Equal(t, 1, calls)

	feedCache.Invalidate(ctx, cache.IndexFeedKey)
	page, err = svc.GlobalFeed(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 2)
	assert.Equal(t, 2, calls)
}

func TestGlobalFeed_AllPagesShareOneSnapshot(t *testing.T) {
	calls := 0
	repo := noopPostRepo()
	repo.listAllFn = func(_ context.Context) ([]models.Post, error) {
		calls++
		return makePosts(15), nil
	}
	svc := newFeedService(repo, noopUserRepo(), noopFollowRepo(), newMemFeedCache())
	ctx := context.Background()

	_, err := svc.GlobalFeed(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GlobalFeed(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second page must be cut from the cached snapshot")
}

func TestProfileFeed_ReportsCountAndFollowing(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 9, Username: username}, nil
	}
	posts := noopPostRepo()
	posts.countByAuthorFn = func(_ context.Context, _ uint) (int64, error) { return 3, nil }
	posts.listByAuthorFn = func(_ context.Context, _ uint, _, _ int) ([]models.Post, error) {
		return makePosts(3), nil
	}
	follows := noopFollowRepo()
	follows.existsFn = func(_ context.Context, userID, authorID uint) (bool, error) {
		return userID == 5 && authorID == 9, nil
	}
	follows.countFollowersFn = func(_ context.Context, authorID uint) (int64, error) {
		if authorID == 9 {
			return 7, nil
		}
		return 0, nil
	}
	follows.countFollowingFn = func(_ context.Context, userID uint) (int64, error) {
		if userID == 9 {
			return 2, nil
		}
		return 0, nil
	}
	svc := newFeedService(posts, users, follows, nil)
	ctx := context.Background()

	view, err := svc.ProfileFeed(ctx, "leo", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), view.PostCount)
	assert.Equal(t, int64(7), view.Followers)
	assert.Equal(t, int64(2), view.Follows)
	assert.True(t, view.Following)
	assert.Len(t, view.Page.Posts, 3)

	anon, err := svc.ProfileFeed(ctx, "leo", 1, 0)
	require.NoError(t, err)
	assert.False(t, anon.Following)
}

func TestProfileFeed_UnknownUser(t *testing.T) {
	svc := newFeedService(noopPostRepo(), noopUserRepo(), noopFollowRepo(), nil)

	_, err := svc.ProfileFeed(context.Background(), "nobody", 1, 0)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestFollowFeed_UsesOffsetQueries(t *testing.T) {
	var gotLimit, gotOffset int
	posts := noopPostRepo()
	posts.countFollowedFn = func(_ context.Context, _ uint) (int64, error) { return 25, nil }
	posts.listFollowedFn = func(_ context.Context, _ uint, limit, offset int) ([]models.Post, error) {
		gotLimit, gotOffset = limit, offset
		return makePosts(10), nil
	}
	svc := newFeedService(posts, noopUserRepo(), noopFollowRepo(), nil)

	page, err := svc.FollowFeed(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
}
