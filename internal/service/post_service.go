package service

import (
	"context"
	"errors"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// ErrNotOwner marks an edit attempt by someone other than the post's author.
// Handlers translate it into a redirect to the post page rather than an
// error response.
var ErrNotOwner = errors.New("post belongs to another author")

type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	bannedWords []string
}

type CreatePostInput struct {
	UserID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

type EditPostInput struct {
	UserID   uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
	// ImageSet distinguishes "no new image uploaded" from "clear the image".
	ImageSet bool
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	bannedWords []string,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		bannedWords: bannedWords,
	}
}

// validateText enforces the content policy shared by create and edit:
// the text must be non-empty and free of banned words, case-insensitively.
func (s *PostService) validateText(text string) map[string]string {
	if strings.TrimSpace(text) == "" {
		return map[string]string{"text": "this field is required"}
	}
	lowered := strings.ToLower(text)
	for _, word := range s.bannedWords {
		if word != "" && strings.Contains(lowered, word) {
			return map[string]string{"text": "please rephrase, this word is not allowed"}
		}
	}
	return nil
}

func (s *PostService) resolveGroup(ctx context.Context, groupID *uint) (*uint, error) {
	if groupID == nil {
		return nil, nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		return nil, err
	}
	return groupID, nil
}

// CreatePost stores a new post. The author is always the acting user;
// nothing in the input can attribute the post to anyone else.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if fields := s.validateText(in.Text); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}
	groupID, err := s.resolveGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		ImageURL: in.ImageURL,
		UserID:   in.UserID,
		GroupID:  groupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost updates a post's text, group and image. Author and creation time
// never change. A non-author editor gets ErrNotOwner and no modification.
func (s *PostService) EditPost(ctx context.Context, in EditPostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return post, ErrNotOwner
	}

	if fields := s.validateText(in.Text); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}
	groupID, err := s.resolveGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = groupID
	post.Group = nil
	if in.ImageSet {
		post.ImageURL = in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}
