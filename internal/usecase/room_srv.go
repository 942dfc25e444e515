package usecase

import (
	"context"
	"errors"
	"strings"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type RoomService interface {
	Overview(ctx context.Context) (*response.RoomPage, error)
	// Save creates the room or, if the number exists, updates only the
	// fields that were supplied.
	Save(ctx context.Context, req *request.SaveRoomRequest) (*response.RoomPage, error)
}

type roomService struct {
	rooms repository.RoomRepository
	log   *zap.Logger
}

func NewRoomService(rooms repository.RoomRepository, log *zap.Logger) RoomService {
	return &roomService{
		rooms: rooms,
		log:   log.With(zap.String("service", "room")),
	}
}

func (s *roomService) Overview(ctx context.Context) (*response.RoomPage, error) {
	types, err := s.rooms.FindRoomTypes(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	page := &response.RoomPage{
		RoomTypes: make([]response.RoomTypeResponse, 0, len(types)),
		Rooms:     make([]response.RoomResponse, 0, len(rooms)),
	}
	for _, rt := range types {
		page.RoomTypes = append(page.RoomTypes, response.RoomTypeToResponse(rt))
	}
	for _, room := range rooms {
		page.Rooms = append(page.Rooms, response.RoomToResponse(room))
	}
	return page, nil
}

func (s *roomService) Save(ctx context.Context, req *request.SaveRoomRequest) (*response.RoomPage, error) {
	req.Number = strings.TrimSpace(req.Number)
	req.Capacity = strings.TrimSpace(req.Capacity)
	req.RoomTypeID = strings.TrimSpace(req.RoomTypeID)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	capacity, err := utils.ParseOptionalInt(req.Capacity)
	if err != nil {
		return nil, invalidInput("kapazitaet: %v", err)
	}
	roomTypeID, err := utils.ParseOptionalInt64(req.RoomTypeID)
	if err != nil {
		return nil, invalidInput("raumtyp_id: %v", err)
	}

	existing, err := s.rooms.FindByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}

	var status *response.Status
	if existing != nil {
		status, err = s.update(ctx, req.Number, capacity, roomTypeID)
	} else {
		status, err = s.create(ctx, req.Number, capacity, roomTypeID)
	}
	if err != nil {
		return nil, err
	}

	page, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	page.Status = status
	return page, nil
}

func (s *roomService) create(ctx context.Context, number string, capacity *int, roomTypeID *int64) (*response.Status, error) {
	room := &entity.Room{
		Number:     number,
		Capacity:   capacity,
		RoomTypeID: roomTypeID,
		Floor:      0,
	}

	err := s.rooms.Create(ctx, room)
	if errors.Is(err, repository.ErrDuplicate) {
		// created concurrently since the lookup
		return s.update(ctx, number, capacity, roomTypeID)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("Room created", zap.Int64("room_id", room.ID), zap.String("number", number))
	return response.NewStatus(i18n.RoomCreated, number), nil
}

func (s *roomService) update(ctx context.Context, number string, capacity *int, roomTypeID *int64) (*response.Status, error) {
	if err := s.rooms.UpdatePartial(ctx, number, capacity, roomTypeID); err != nil {
		return nil, err
	}

	s.log.Info("Room updated", zap.String("number", number))
	return response.NewStatus(i18n.RoomUpdated, number), nil
}
