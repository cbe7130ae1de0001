package seed

import (
	"fmt"
	"log"
	"math/rand"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// Options tune how the seeder generates data.
type Options struct {
	// SkipBcrypt stores a plaintext placeholder password instead of hashing,
	// for fast local seeding only.
	SkipBcrypt bool `yaml:"skip_bcrypt"`
	// MaxDays bounds how far in the past generated posts are dated.
	MaxDays int `yaml:"max_days"`
}

// Preset describes how much demo data to generate.
type Preset struct {
	Users           int     `yaml:"users"`
	Groups          int     `yaml:"groups"`
	PostsPerUser    int     `yaml:"posts_per_user"`
	CommentsPerPost int     `yaml:"comments_per_post"`
	FollowRatio     float64 `yaml:"follow_ratio"`
	Options         Options `yaml:"options"`
}

// DefaultPreset is a small data set suitable for local development.
func DefaultPreset() Preset {
	return Preset{
		Users:           10,
		Groups:          3,
		PostsPerUser:    5,
		CommentsPerPost: 2,
		FollowRatio:     0.3,
	}
}

// Run populates the database according to the preset.
func Run(db *gorm.DB, preset Preset) error {
	f := NewFactory(db, preset.Options)

	users := make([]*models.User, 0, preset.Users)
	for i := 0; i < preset.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	groups := make([]*models.Group, 0, preset.Groups)
	for i := 0; i < preset.Groups; i++ {
		group, err := f.CreateGroup()
		if err != nil {
			return fmt.Errorf("seed group: %w", err)
		}
		groups = append(groups, group)
	}

	var posts []*models.Post
	for _, user := range users {
		for i := 0; i < preset.PostsPerUser; i++ {
			// Roughly half the posts go into a random group.
			var group *models.Group
			if len(groups) > 0 && rand.Intn(2) == 0 {
				group = groups[rand.Intn(len(groups))]
			}
			post, err := f.CreatePost(user, group)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	for _, post := range posts {
		for i := 0; i < preset.CommentsPerPost; i++ {
			commenter := users[rand.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	for _, user := range users {
		for _, author := range users {
			if rand.Float64() < preset.FollowRatio {
				if err := f.CreateFollow(user, author); err != nil {
					return fmt.Errorf("seed follow: %w", err)
				}
			}
		}
	}

	log.Printf("seed complete: %d users, %d groups, %d posts",
		len(users), len(groups), len(posts))
	return nil
}
