package usecase

import (
	"context"
	"testing"

	"room-booking/internal/dto/request"
	"room-booking/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRoomService_CreateThenPartialUpdate(t *testing.T) {
	repo, f := newFakes()
	svc := NewRoomService(repo.Room, zap.NewNop())
	ctx := context.Background()

	page, err := svc.Save(ctx, &request.SaveRoomRequest{Number: "101", Capacity: "2", RoomTypeID: "1"})
	require.NoError(t, err)
	require.NotNil(t, page.Status)
	assert.Equal(t, i18n.RoomCreated, page.Status.Kind)
	assert.Equal(t, []any{"101"}, page.Status.Params)
	require.Len(t, f.rooms.rooms, 1)
	assert.Equal(t, 0, f.rooms.rooms[0].Floor)

	// blank capacity keeps the stored value
	page, err = svc.Save(ctx, &request.SaveRoomRequest{Number: "101", Capacity: "", RoomTypeID: "2"})
	require.NoError(t, err)
	assert.Equal(t, i18n.RoomUpdated, page.Status.Kind)

	require.Len(t, f.rooms.rooms, 1)
	room := f.rooms.rooms[0]
	require.NotNil(t, room.Capacity)
	require.NotNil(t, room.RoomTypeID)
	assert.Equal(t, 2, *room.Capacity)
	assert.Equal(t, int64(2), *room.RoomTypeID)

	require.Len(t, page.Rooms, 1)
	require.NotNil(t, page.Rooms[0].RoomType)
	assert.Equal(t, "Doppelzimmer", *page.Rooms[0].RoomType)
	assert.Len(t, page.RoomTypes, 2)
}

func TestRoomService_CreateWithoutOptionalFields(t *testing.T) {
	repo, f := newFakes()
	svc := NewRoomService(repo.Room, zap.NewNop())

	page, err := svc.Save(context.Background(), &request.SaveRoomRequest{Number: " 7 "})
	require.NoError(t, err)
	assert.Equal(t, i18n.RoomCreated, page.Status.Kind)
	require.Len(t, f.rooms.rooms, 1)
	assert.Equal(t, "7", f.rooms.rooms[0].Number)
	assert.Nil(t, f.rooms.rooms[0].Capacity)
	assert.Nil(t, f.rooms.rooms[0].RoomTypeID)
}

func TestRoomService_ConcurrentCreateFallsBackToUpdate(t *testing.T) {
	repo, f := newFakes()
	f.rooms.raceOnCreate = true
	svc := NewRoomService(repo.Room, zap.NewNop())

	page, err := svc.Save(context.Background(), &request.SaveRoomRequest{Number: "201", Capacity: "3"})
	require.NoError(t, err)
	assert.Equal(t, i18n.RoomUpdated, page.Status.Kind)
	require.Len(t, f.rooms.rooms, 1)
	assert.Equal(t, 3, *f.rooms.rooms[0].Capacity)
}

func TestRoomService_SaveValidation(t *testing.T) {
	repo, f := newFakes()
	svc := NewRoomService(repo.Room, zap.NewNop())

	tests := []struct {
		name string
		req  request.SaveRoomRequest
	}{
		{"missing number", request.SaveRoomRequest{Capacity: "2"}},
		{"capacity not numeric", request.SaveRoomRequest{Number: "1", Capacity: "zwei"}},
		{"type not numeric", request.SaveRoomRequest{Number: "1", RoomTypeID: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Empty(t, f.rooms.rooms)
}
