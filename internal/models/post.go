package models

import "time"

// Post is a text entry owned by exactly one author, optionally attached
// to a group and illustrated with an image.
//
// The author reference cascades: deleting a user removes their posts.
// The group reference nullifies: deleting a group orphans the post but
// keeps it visible in author and global feeds. Both rules are declared
// here so the storage layer enforces them rather than being assumed.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	ImageURL  string    `json:"image_url,omitempty"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID   *uint     `gorm:"index" json:"group_id,omitempty"`
	Group     *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}
