package usecase

import (
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"
)

type fakes struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	todos    *fakeTodoRepo
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
	explorer *fakeExplorerRepo
}

func newFakes() (*repository.Repository, *fakes) {
	f := &fakes{
		users:    &fakeUserRepo{},
		sessions: newFakeSessionRepo(),
		todos:    &fakeTodoRepo{},
		rooms: &fakeRoomRepo{types: []*entity.RoomType{
			{ID: 1, Description: "Einzelzimmer"},
			{ID: 2, Description: "Doppelzimmer"},
		}},
		bookings: newFakeBookingRepo(map[int64]string{1: "101", 2: "102"}),
		explorer: &fakeExplorerRepo{tables: []string{"todos", "users"}},
	}
	return &repository.Repository{
		User:     f.users,
		Session:  f.sessions,
		Todo:     f.todos,
		Room:     f.rooms,
		Booking:  f.bookings,
		Explorer: f.explorer,
	}, f
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{CookieName: "session_token", TTLHours: 24},
		Webhook: utils.WebhookConfig{Secret: "s3cret"},
	}
}

func fixedClock(t time.Time) clock {
	return func() time.Time { return t }
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
