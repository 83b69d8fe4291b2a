package models

import "time"

// Note is a persisted calendar note. Date holds the YYYY-MM-DD key.
type Note struct {
	ID        uint      `gorm:"primaryKey"`
	Date      string    `gorm:"not null;uniqueIndex:uidx_notes_date"`
	Text      string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
