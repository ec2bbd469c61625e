package models

import "time"

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Location    string   `gorm:"size:100;not null" json:"location"`
	Description string   `gorm:"type:text" json:"description"`
	Images      []string `gorm:"serializer:json" json:"images"`

	CreationDate time.Time `gorm:"autoCreateTime" json:"creationDate"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
