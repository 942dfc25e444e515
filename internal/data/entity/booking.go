package entity

import "time"

// Booking maps table Buchung. Dates are calendar days, both ends inclusive.
type Booking struct {
	ID        int64     `db:"buchung_id"`
	RoomID    int64     `db:"zimmer_id"`
	UserID    int64     `db:"nutzer_id"`
	StartDate time.Time `db:"startdatum"`
	EndDate   time.Time `db:"enddatum"`
}

// Overlaps reports whether [start, end] intersects the booking's range.
// Touching endpoints count as overlapping.
func (b Booking) Overlaps(start, end time.Time) bool {
	return !(b.EndDate.Before(start) || b.StartDate.After(end))
}

// StartsBefore reports whether the booking starts strictly before day.
func (b Booking) StartsBefore(day time.Time) bool {
	return b.StartDate.Before(day)
}

// BookingListing is a booking joined with its room number.
type BookingListing struct {
	ID         int64
	RoomNumber string
	StartDate  time.Time
	EndDate    time.Time
}
