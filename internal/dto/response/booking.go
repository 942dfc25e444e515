package response

import (
	"time"

	"room-booking/internal/data/entity"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID         int64  `json:"buchung_id"`
	RoomNumber string `json:"zimmernummer"`
	StartDate  string `json:"startdatum"`
	EndDate    string `json:"enddatum"`
	Cancelable bool   `json:"cancelable"`
}

type BookingPage struct {
	Notice
	Rooms    []RoomResponse    `json:"rooms"`
	Bookings []BookingResponse `json:"bookings"`
}

type CancelPage struct {
	Notice
	Today    string            `json:"today"`
	Bookings []BookingResponse `json:"bookings"`
}

// BookingToResponse marks bookings that start on or after today as cancelable.
func BookingToResponse(b *entity.BookingListing, today time.Time) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		RoomNumber: b.RoomNumber,
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		Cancelable: !b.StartDate.Before(today),
	}
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
