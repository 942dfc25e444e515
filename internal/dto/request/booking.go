package request

type CreateBookingRequest struct {
	RoomID    int64  `json:"zimmer_id" form:"zimmer_id" validate:"required,gt=0"`
	StartDate string `json:"startdatum" form:"startdatum" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"enddatum" form:"enddatum" validate:"required,datetime=2006-01-02"`
}

type CancelBookingRequest struct {
	BookingID int64 `json:"booking_id" form:"booking_id" validate:"required,gt=0"`
}
