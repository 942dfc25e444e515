package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	Overview(ctx context.Context, userID int64) (*response.BookingPage, error)
	Book(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.BookingPage, error)

	CancelOverview(ctx context.Context, userID int64) (*response.CancelPage, error)
	Cancel(ctx context.Context, userID int64, req *request.CancelBookingRequest) (*response.CancelPage, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  clock
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) today() time.Time {
	return utils.DateOnly(s.now())
}

func (s *bookingService) Overview(ctx context.Context, userID int64) (*response.BookingPage, error) {
	rooms, err := s.repo.Room.FindBookable(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.ownBookings(ctx, userID)
	if err != nil {
		return nil, err
	}

	page := &response.BookingPage{
		Rooms:    make([]response.RoomResponse, 0, len(rooms)),
		Bookings: bookings,
	}
	for _, room := range rooms {
		page.Rooms = append(page.Rooms, response.RoomToResponse(room))
	}
	return page, nil
}

func (s *bookingService) Book(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.BookingPage, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, invalidInput("startdatum: %v", err)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, invalidInput("enddatum: %v", err)
	}
	if end.Before(start) {
		return nil, invalidInput("enddatum must not be before startdatum")
	}

	booking := &entity.Booking{
		RoomID:    req.RoomID,
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	}

	var status *response.Status
	err = s.repo.Booking.Create(ctx, booking)
	switch {
	case errors.Is(err, repository.ErrOverlap):
		s.log.Info("Booking rejected: room already booked",
			zap.Int64("room_id", req.RoomID),
			zap.String("start", req.StartDate),
			zap.String("end", req.EndDate))
		status = response.NewStatus(i18n.BookingConflict)
	case errors.Is(err, repository.ErrRoomNotFound):
		return nil, invalidInput("zimmer_id: unknown room %d", req.RoomID)
	case err != nil:
		return nil, err
	default:
		s.log.Info("Booking created",
			zap.Int64("booking_id", booking.ID),
			zap.Int64("room_id", booking.RoomID),
			zap.Int64("user_id", userID))
		status = response.NewStatus(i18n.BookingSaved)
	}

	page, err := s.Overview(ctx, userID)
	if err != nil {
		return nil, err
	}
	page.Status = status
	return page, nil
}

func (s *bookingService) CancelOverview(ctx context.Context, userID int64) (*response.CancelPage, error) {
	bookings, err := s.ownBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &response.CancelPage{
		Today:    response.FormatDate(s.today()),
		Bookings: bookings,
	}, nil
}

// Cancel deletes a booking only for its owner and only while it has not started.
func (s *bookingService) Cancel(ctx context.Context, userID int64, req *request.CancelBookingRequest) (*response.CancelPage, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	status, err := s.cancel(ctx, userID, req.BookingID)
	if err != nil {
		return nil, err
	}

	page, err := s.CancelOverview(ctx, userID)
	if err != nil {
		return nil, err
	}
	page.Status = status
	return page, nil
}

func (s *bookingService) cancel(ctx context.Context, userID, bookingID int64) (*response.Status, error) {
	booking, err := s.repo.Booking.FindOwned(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if booking == nil {
		s.log.Warn("Cancellation denied",
			zap.Int64("booking_id", bookingID),
			zap.Int64("user_id", userID))
		return response.NewStatus(i18n.CancelDenied), nil
	}

	if booking.StartsBefore(s.today()) {
		return response.NewStatus(i18n.CancelPast), nil
	}

	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled", zap.Int64("booking_id", bookingID), zap.Int64("user_id", userID))
	return response.NewStatus(i18n.CancelDone), nil
}

func (s *bookingService) ownBookings(ctx context.Context, userID int64) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	out := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, response.BookingToResponse(b, today))
	}
	return out, nil
}
