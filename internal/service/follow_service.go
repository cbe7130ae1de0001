package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *FollowService) resolveAuthor(ctx context.Context, username string) (*models.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return author, nil
}

// Follow subscribes the user to the author's posts. Following yourself or
// someone you already follow changes nothing and is not an error.
func (s *FollowService) Follow(ctx context.Context, userID uint, authorUsername string) (*models.User, error) {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if author.ID == userID {
		return author, nil
	}
	if err := s.followRepo.Create(ctx, userID, author.ID); err != nil {
		return nil, err
	}
	return author, nil
}

// Unfollow removes the subscription; unfollowing someone you do not follow
// is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, authorUsername string) (*models.User, error) {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if author.ID == userID {
		return author, nil
	}
	if err := s.followRepo.Delete(ctx, userID, author.ID); err != nil {
		return nil, err
	}
	return author, nil
}
