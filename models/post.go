package models

import "time"

// Post is a short message written by exactly one Person. Ids are assigned
// sequentially (auto-increment in sqlite mode, len-of-collection in memory
// mode, so both count up from the oldest post).
type Post struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"column:comment;not null" json:"text"`
	AuthorID  uint      `gorm:"column:author_id" json:"author_id,omitempty"`
	Author    *Person   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedOn time.Time `gorm:"column:created_on" json:"created_on,omitzero"`
	UpdatedOn time.Time `gorm:"column:updated_on" json:"updated_on,omitzero"`
}

// TableName explicitly sets the table name for GORM.
func (Post) TableName() string {
	return "post"
}
