// Package service contains the application's business logic.
package service

import (
	"yatube/internal/models"
)

// clampPage normalizes a requested page number against the total number of
// pages: out-of-range requests resolve to the nearest valid page instead of
// erroring, and an empty result set still has one (empty) page.
func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func totalPages(totalCount int64) int {
	pages := int((totalCount + models.FeedPageSize - 1) / models.FeedPageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}

// newPage assembles pagination facts for a page that has already been sliced.
func newPage(posts []models.Post, number, pages int, totalCount int64) *models.Page {
	if posts == nil {
		posts = []models.Post{}
	}
	return &models.Page{
		Posts:      posts,
		Number:     number,
		TotalPages: pages,
		TotalCount: int(totalCount),
		HasPrev:    number > 1,
		HasNext:    number < pages,
	}
}

// pageOf slices one page out of a fully loaded post list.
func pageOf(posts []models.Post, page int) *models.Page {
	total := int64(len(posts))
	pages := totalPages(total)
	number := clampPage(page, pages)

	start := (number - 1) * models.FeedPageSize
	end := start + models.FeedPageSize
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}
	return newPage(posts[start:end], number, pages, total)
}
