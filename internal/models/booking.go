package models

import "time"

// Booking rows carry a composite unique index over the full
// (start, end, user, hotel) tuple so the duplicate check done in the
// usecase layer is backed by an actual database guarantee.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_bookings_no_duplicate" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_bookings_no_duplicate" json:"endDate"`

	UserID uint  `gorm:"not null;uniqueIndex:idx_bookings_no_duplicate" json:"userId"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	HotelID uint   `gorm:"not null;uniqueIndex:idx_bookings_no_duplicate" json:"hotelId"`
	Hotel   *Hotel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hotel,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
