package models

import "time"

// Person is a directory entry. The in-memory directory stores it as-is;
// the sqlite store adds the generated ID, timestamps and the unique name
// constraint, so those fields stay zero (and hidden from JSON) in memory mode.
type Person struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Age       *int      `json:"age"`
	CreatedOn time.Time `gorm:"column:created_on" json:"created_on,omitzero"`
	UpdatedOn time.Time `gorm:"column:updated_on" json:"updated_on,omitzero"`

	// only populated by the sqlite store when explicitly preloaded
	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "person"
}
