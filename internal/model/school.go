package model

import "time"

// School represents a single registered school.
//
// Contact is stored as an integer but serialized as a decimal string so
// that clients reading the JSON never lose precision on large values.
type School struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:256;not null" json:"name"`
	Address   string    `gorm:"size:512;not null" json:"address"`
	City      string    `gorm:"size:128;not null" json:"city"`
	State     string    `gorm:"size:128;not null" json:"state"`
	Contact   int64     `gorm:"not null" json:"contact,string"`
	EmailID   string    `gorm:"column:email_id;size:256;not null" json:"email_id"`
	Image     string    `gorm:"size:1024;not null" json:"image"` // public blob URL
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}
