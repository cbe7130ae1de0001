package server

import (
	"github.com/gofiber/fiber/v2"
)

// Index serves the global feed, newest first. Every visitor shares one
// time-boxed snapshot, so a fresh post may take up to the cache TTL to show.
func (s *Server) Index(c *fiber.Ctx) error {
	page, err := s.feedService.GlobalFeed(c.UserContext(), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// GroupDirectory lists all groups.
func (s *Server) GroupDirectory(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"groups": groups})
}

// GroupPosts serves a group's page of posts by slug.
func (s *Server) GroupPosts(c *fiber.Ctx) error {
	view, err := s.feedService.GroupFeed(c.UserContext(), c.Params("slug"), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// Profile serves an author's page: their posts, post count, and whether the
// viewer follows them.
func (s *Server) Profile(c *fiber.Ctx) error {
	view, err := s.feedService.ProfileFeed(
		c.UserContext(), c.Params("username"), parsePage(c), s.optionalUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// FollowIndex serves the authenticated user's follow feed.
func (s *Server) FollowIndex(c *fiber.Ctx) error {
	page, err := s.feedService.FollowFeed(c.UserContext(), currentUserID(c), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}
