package server

import (
	"github.com/gofiber/fiber/v2"
)

// AddComment attaches a comment to a post and returns to the post page.
func (s *Server) AddComment(c *fiber.Ctx) error {
	post, err := s.getAuthorPost(c)
	if err != nil {
		return nil
	}

	_, err = s.commentService.AddComment(
		c.UserContext(), currentUserID(c), post.ID, c.FormValue("text"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect(postURL(c.Params("username"), post.ID), fiber.StatusFound)
}
