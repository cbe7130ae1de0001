package server

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"yatube/internal/models"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveImage writes an uploaded image under the media directory and returns
// its public URL.
func (s *Server) saveImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", models.NewFieldValidationError(map[string]string{
			"image": "unsupported image format",
		})
	}

	dir := filepath.Join(s.config.MediaDir, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", models.NewInternalError(err)
	}
	return "/media/posts/" + name, nil
}

// parseGroupField reads the optional group form field.
func parseGroupField(c *fiber.Ctx) (*uint, error) {
	raw := strings.TrimSpace(c.FormValue("group"))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, models.NewFieldValidationError(map[string]string{
			"group": "select a valid choice",
		})
	}
	groupID := uint(id)
	return &groupID, nil
}

// NewPostPage returns the context the post form needs: the group choices.
func (s *Server) NewPostPage(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"groups": groups})
}

// CreatePost stores a new post for the authenticated user and redirects to
// the global feed. The author is always the acting user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	groupID, err := parseGroupField(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	imageURL := ""
	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		imageURL, err = s.saveImage(c, file)
		if err != nil {
			return respondServiceError(c, err)
		}
	}

	_, err = s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:   currentUserID(c),
		Text:     c.FormValue("text"),
		GroupID:  groupID,
		ImageURL: imageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect("/", fiber.StatusFound)
}

// postURL is the canonical page for a post.
func postURL(username string, postID uint) string {
	return fmt.Sprintf("/%s/%d", username, postID)
}

// getAuthorPost loads a post and verifies that it belongs to the author in
// the URL, responding 404 otherwise.
func (s *Server) getAuthorPost(c *fiber.Ctx) (*models.Post, error) {
	postID, err := s.parsePostID(c)
	if err != nil {
		return nil, err
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		_ = respondServiceError(c, err)
		return nil, errResponseWritten
	}
	if post.User.Username != c.Params("username") {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
		return nil, errResponseWritten
	}
	return post, nil
}

// PostDetail serves one post with its comments and the author's post count.
func (s *Server) PostDetail(c *fiber.Ctx) error {
	post, err := s.getAuthorPost(c)
	if err != nil {
		return nil
	}

	comments, err := s.commentService.PostComments(c.UserContext(), post.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	postCount, err := s.postRepo.CountByAuthor(c.UserContext(), post.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post":       post,
		"comments":   comments,
		"post_count": postCount,
	})
}

// EditPostPage returns the edit form context. A visitor who is not the
// author is sent to the post page instead of being shown the form.
func (s *Server) EditPostPage(c *fiber.Ctx) error {
	post, err := s.getAuthorPost(c)
	if err != nil {
		return nil
	}
	if post.UserID != currentUserID(c) {
		return c.Redirect(postURL(c.Params("username"), post.ID), fiber.StatusFound)
	}

	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post":   post,
		"groups": groups,
	})
}

// EditPost updates a post's text, group and image. The post must belong to
// the author in the URL; a non-author is quietly redirected to the post page
// with nothing changed.
func (s *Server) EditPost(c *fiber.Ctx) error {
	post, err := s.getAuthorPost(c)
	if err != nil {
		return nil
	}

	groupID, err := parseGroupField(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	imageURL := ""
	imageSet := false
	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		imageURL, err = s.saveImage(c, file)
		if err != nil {
			return respondServiceError(c, err)
		}
		imageSet = true
	}

	_, err = s.postService.EditPost(c.UserContext(), service.EditPostInput{
		UserID:   currentUserID(c),
		PostID:   post.ID,
		Text:     c.FormValue("text"),
		GroupID:  groupID,
		ImageURL: imageURL,
		ImageSet: imageSet,
	})
	if errors.Is(err, service.ErrNotOwner) {
		return c.Redirect(postURL(c.Params("username"), post.ID), fiber.StatusFound)
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect(postURL(c.Params("username"), post.ID), fiber.StatusFound)
}
