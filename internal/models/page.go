package models

// FeedPageSize is the fixed number of posts per feed page across all scopes.
const FeedPageSize = 10

// Page is one slice of a feed: the posts for the requested page plus the
// navigation facts a client needs to render a paginator.
type Page struct {
	Posts      []Post `json:"posts"`
	Number     int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	TotalCount int    `json:"total_count"`
	HasPrev    bool   `json:"has_prev"`
	HasNext    bool   `json:"has_next"`
}
