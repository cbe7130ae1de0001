package service

import (
	"context"
	"time"

	"yatube/internal/cache"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/repository"
)

// FeedCache is the snapshot storage the feed service reads through. The
// production implementation is Redis-backed; tests substitute a map.
type FeedCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Invalidate(ctx context.Context, key string)
}

// ProfileView is everything a profile page shows beyond the posts
// themselves.
type ProfileView struct {
	Author    models.User `json:"author"`
	PostCount int64       `json:"post_count"`
	// Followers counts users following the author; Follows counts authors
	// the profile owner follows.
	Followers int64        `json:"followers"`
	Follows   int64        `json:"follows"`
	Following bool         `json:"following"`
	Page      *models.Page `json:"page"`
}

// GroupView pairs a group with one page of its posts.
type GroupView struct {
	Group *models.Group `json:"group"`
	Page  *models.Page  `json:"page"`
}

type FeedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
	cache      FeedCache
	cacheTTL   time.Duration
}

func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
	feedCache FeedCache,
	cacheTTL time.Duration,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
		cache:      feedCache,
		cacheTTL:   cacheTTL,
	}
}

// GlobalFeed serves the public index. The full ordered post list is cached
// as one snapshot under a fixed key shared by every reader; pages are cut
// from the snapshot in memory, so all pages of the feed age out together.
// Readers may see posts up to the TTL late, which is accepted.
func (s *FeedService) GlobalFeed(ctx context.Context, page int) (*models.Page, error) {
	var posts []models.Post

	if s.cache != nil {
		found, err := s.cache.Get(ctx, cache.IndexFeedKey, &posts)
		if err == nil && found {
			middleware.FeedCacheHits.WithLabelValues("hit").Inc()
			return pageOf(posts, page), nil
		}
		middleware.FeedCacheHits.WithLabelValues("miss").Inc()
	}

	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, cache.IndexFeedKey, posts, s.cacheTTL)
	}
	return pageOf(posts, page), nil
}

// GroupFeed returns the group identified by slug and one page of its posts.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, page int) (*GroupView, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	pages := totalPages(count)
	number := clampPage(page, pages)

	posts, err := s.postRepo.ListByGroup(ctx, group.ID, models.FeedPageSize, (number-1)*models.FeedPageSize)
	if err != nil {
		return nil, err
	}
	return &GroupView{Group: group, Page: newPage(posts, number, pages, count)}, nil
}

// ProfileFeed returns an author's page: their posts, total post count, and
// whether the viewer follows them. viewerID zero means an anonymous viewer.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, page int, viewerID uint) (*ProfileView, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	count, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	pages := totalPages(count)
	number := clampPage(page, pages)

	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, models.FeedPageSize, (number-1)*models.FeedPageSize)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	follows, err := s.followRepo.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &ProfileView{
		Author:    *author,
		PostCount: count,
		Followers: followers,
		Follows:   follows,
		Following: following,
		Page:      newPage(posts, number, pages, count),
	}, nil
}

// FollowFeed returns one page of posts by the authors the user follows.
// It is always computed fresh, never cached.
func (s *FeedService) FollowFeed(ctx context.Context, userID uint, page int) (*models.Page, error) {
	count, err := s.postRepo.CountFollowed(ctx, userID)
	if err != nil {
		return nil, err
	}
	pages := totalPages(count)
	number := clampPage(page, pages)

	posts, err := s.postRepo.ListFollowed(ctx, userID, models.FeedPageSize, (number-1)*models.FeedPageSize)
	if err != nil {
		return nil, err
	}
	return newPage(posts, number, pages, count), nil
}
