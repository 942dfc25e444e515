package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/pkg/database"

	"github.com/google/uuid"
)

// In-memory repositories mirroring the SQL semantics closely enough for
// service tests.

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.SessionRepository  = (*fakeSessionRepo)(nil)
	_ repository.TodoRepository     = (*fakeTodoRepo)(nil)
	_ repository.RoomRepository     = (*fakeRoomRepo)(nil)
	_ repository.BookingRepository  = (*fakeBookingRepo)(nil)
	_ repository.ExplorerRepository = (*fakeExplorerRepo)(nil)
	_ Puller                        = (*fakePuller)(nil)
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.ID = int64(len(f.users) + 1)
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.Session) error {
	f.sessions[s.Token] = s
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token uuid.UUID) (*entity.Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil || !s.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token uuid.UUID) error {
	if s, ok := f.sessions[token]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeTodoRepo struct {
	todos  []*entity.Todo
	nextID int64
}

func (f *fakeTodoRepo) Create(_ context.Context, todo *entity.Todo) error {
	f.nextID++
	todo.ID = f.nextID
	cp := *todo
	f.todos = append(f.todos, &cp)
	return nil
}

func (f *fakeTodoRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.Todo, error) {
	var out []*entity.Todo
	for _, t := range f.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Due.Before(out[j].Due) })
	return out, nil
}

func (f *fakeTodoRepo) FindAll(_ context.Context) ([]*entity.Todo, error) {
	out := make([]*entity.Todo, len(f.todos))
	copy(out, f.todos)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeTodoRepo) DeleteOwned(_ context.Context, id, userID int64) (bool, error) {
	for i, t := range f.todos {
		if t.ID == id && t.UserID == userID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeRoomRepo struct {
	types []*entity.RoomType
	rooms []*entity.Room
	// raceOnCreate makes the next Create fail as if another request
	// inserted the same number first.
	raceOnCreate bool
}

func (f *fakeRoomRepo) FindRoomTypes(_ context.Context) ([]*entity.RoomType, error) {
	return f.types, nil
}

func (f *fakeRoomRepo) FindByNumber(_ context.Context, number string) (*entity.Room, error) {
	for _, r := range f.rooms {
		if r.Number == number {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) listings(requireType bool) []*entity.RoomListing {
	var out []*entity.RoomListing
	for _, r := range f.rooms {
		var typeName *string
		if r.RoomTypeID != nil {
			for _, rt := range f.types {
				if rt.ID == *r.RoomTypeID {
					d := rt.Description
					typeName = &d
				}
			}
		}
		if requireType && typeName == nil {
			continue
		}
		out = append(out, &entity.RoomListing{ID: r.ID, Number: r.Number, Capacity: r.Capacity, TypeName: typeName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.RoomListing, error) {
	return f.listings(false), nil
}

func (f *fakeRoomRepo) FindBookable(_ context.Context) ([]*entity.RoomListing, error) {
	return f.listings(true), nil
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	if f.raceOnCreate {
		f.raceOnCreate = false
		f.rooms = append(f.rooms, &entity.Room{ID: int64(len(f.rooms) + 1), Number: room.Number})
		return repository.ErrDuplicate
	}
	for _, r := range f.rooms {
		if r.Number == room.Number {
			return repository.ErrDuplicate
		}
	}
	room.ID = int64(len(f.rooms) + 1)
	cp := *room
	f.rooms = append(f.rooms, &cp)
	return nil
}

func (f *fakeRoomRepo) UpdatePartial(_ context.Context, number string, capacity *int, roomTypeID *int64) error {
	for _, r := range f.rooms {
		if r.Number == number {
			if capacity != nil {
				r.Capacity = capacity
			}
			if roomTypeID != nil {
				r.RoomTypeID = roomTypeID
			}
			return nil
		}
	}
	return errors.New("room not found")
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	rooms    map[int64]string
	bookings []*entity.Booking
	nextID   int64
}

func newFakeBookingRepo(rooms map[int64]string) *fakeBookingRepo {
	return &fakeBookingRepo{rooms: rooms}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rooms[b.RoomID]; !ok {
		return repository.ErrRoomNotFound
	}
	for _, existing := range f.bookings {
		if existing.RoomID == b.RoomID && existing.Overlaps(b.StartDate, b.EndDate) {
			return repository.ErrOverlap
		}
	}
	f.nextID++
	b.ID = f.nextID
	cp := *b
	f.bookings = append(f.bookings, &cp)
	return nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.BookingListing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BookingListing
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, &entity.BookingListing{
				ID: b.ID, RoomNumber: f.rooms[b.RoomID], StartDate: b.StartDate, EndDate: b.EndDate,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f *fakeBookingRepo) FindOwned(_ context.Context, id, userID int64) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id && b.UserID == userID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("booking not found")
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakeExplorerRepo struct {
	tables  []string
	fetched []string
	limits  []int
}

func (f *fakeExplorerRepo) ListTables(_ context.Context) ([]string, error) {
	return f.tables, nil
}

func (f *fakeExplorerRepo) FetchRows(_ context.Context, table string, limit int) (*repository.TableData, error) {
	f.fetched = append(f.fetched, table)
	f.limits = append(f.limits, limit)
	return &repository.TableData{
		Columns: []string{"id"},
		Rows:    []database.Row{{"id": int64(1)}},
	}, nil
}

type fakePuller struct {
	calls int
	err   error
}

func (f *fakePuller) Pull(_ context.Context) error {
	f.calls++
	return f.err
}
