package server

import (
	"github.com/gofiber/fiber/v2"
)

// ProfileFollow subscribes the authenticated user to the author and returns
// to the author's page. Repeats and self-follows change nothing.
func (s *Server) ProfileFollow(c *fiber.Ctx) error {
	username := c.Params("username")
	if _, err := s.followService.Follow(c.UserContext(), currentUserID(c), username); err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect("/"+username, fiber.StatusFound)
}

// ProfileUnfollow removes the subscription and returns to the author's page.
func (s *Server) ProfileUnfollow(c *fiber.Ctx) error {
	username := c.Params("username")
	if _, err := s.followService.Unfollow(c.UserContext(), currentUserID(c), username); err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect("/"+username, fiber.StatusFound)
}
