package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRepository connects to TEST_DATABASE_URL and creates the schema in
// a throwaway Postgres schema. Tests are skipped when the variable is unset.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())

	admin, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		admin.Close()
	})

	config, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	config.ConnConfig.RuntimeParams["search_path"] = schema
	pool, err := pgxpool.NewWithConfig(ctx, config)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ddl, err := os.ReadFile("../../../db/schema.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(ddl))
	require.NoError(t, err)

	return NewRepository(database.NewDB(pool), zap.NewNop())
}

func day(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIntegration_BookingOverlap(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := &entity.User{Username: "anna", PasswordHash: "x"}
	require.NoError(t, repo.User.Create(ctx, user))
	room := &entity.Room{Number: "101"}
	require.NoError(t, repo.Room.Create(ctx, room))

	first := &entity.Booking{RoomID: room.ID, UserID: user.ID, StartDate: day(11, 10), EndDate: day(11, 15)}
	require.NoError(t, repo.Booking.Create(ctx, first))
	assert.NotZero(t, first.ID)

	touching := &entity.Booking{RoomID: room.ID, UserID: user.ID, StartDate: day(11, 15), EndDate: day(11, 20)}
	assert.ErrorIs(t, repo.Booking.Create(ctx, touching), ErrOverlap)

	after := &entity.Booking{RoomID: room.ID, UserID: user.ID, StartDate: day(11, 16), EndDate: day(11, 20)}
	require.NoError(t, repo.Booking.Create(ctx, after))

	unknown := &entity.Booking{RoomID: room.ID + 100, UserID: user.ID, StartDate: day(12, 1), EndDate: day(12, 2)}
	assert.ErrorIs(t, repo.Booking.Create(ctx, unknown), ErrRoomNotFound)

	listing, err := repo.Booking.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, listing, 2)
	assert.Equal(t, "101", listing[0].RoomNumber)
	assert.True(t, listing[0].StartDate.Equal(day(11, 10)))
}

func TestIntegration_ConcurrentBookingsSerialized(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := &entity.User{Username: "anna", PasswordHash: "x"}
	require.NoError(t, repo.User.Create(ctx, user))
	room := &entity.Room{Number: "202"}
	require.NoError(t, repo.Room.Create(ctx, room))

	const workers = 8
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			errs <- repo.Booking.Create(ctx, &entity.Booking{
				RoomID: room.ID, UserID: user.ID, StartDate: day(12, 1), EndDate: day(12, 3),
			})
		}()
	}

	succeeded := 0
	for i := 0; i < workers; i++ {
		err := <-errs
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrOverlap)
	}
	assert.Equal(t, 1, succeeded)
}

func TestIntegration_RoomPartialUpdate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	capacity := 2
	room := &entity.Room{Number: "101", Capacity: &capacity}
	require.NoError(t, repo.Room.Create(ctx, room))
	assert.ErrorIs(t, repo.Room.Create(ctx, &entity.Room{Number: "101"}), ErrDuplicate)

	require.NoError(t, repo.Room.UpdatePartial(ctx, "101", nil, nil))
	stored, err := repo.Room.FindByNumber(ctx, "101")
	require.NoError(t, err)
	require.NotNil(t, stored.Capacity)
	assert.Equal(t, 2, *stored.Capacity)

	four := 4
	require.NoError(t, repo.Room.UpdatePartial(ctx, "101", &four, nil))
	stored, err = repo.Room.FindByNumber(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, 4, *stored.Capacity)

	assert.Error(t, repo.Room.UpdatePartial(ctx, "999", &four, nil))

	bookable, err := repo.Room.FindBookable(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookable)
}

func TestIntegration_TodoOwnershipAndExplorer(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	anna := &entity.User{Username: "anna", PasswordHash: "x"}
	bert := &entity.User{Username: "bert", PasswordHash: "y"}
	require.NoError(t, repo.User.Create(ctx, anna))
	require.NoError(t, repo.User.Create(ctx, bert))

	todo := &entity.Todo{UserID: anna.ID, Content: "Milch", Due: time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Todo.Create(ctx, todo))

	deleted, err := repo.Todo.DeleteOwned(ctx, todo.ID, bert.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	tables, err := repo.Explorer.ListTables(ctx)
	require.NoError(t, err)
	assert.Contains(t, tables, "todos")
	assert.Contains(t, tables, "zimmer")

	data, err := repo.Explorer.FetchRows(ctx, "users", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "username", "password"}, data.Columns)
	assert.Len(t, data.Rows, 1)

	deleted, err = repo.Todo.DeleteOwned(ctx, todo.ID, anna.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestIntegration_Sessions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     1,
		Role:       entity.RoleStaff,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Session.Create(ctx, session))

	found, err := repo.Session.FindValidSession(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.RoleStaff, found.Role)

	require.NoError(t, repo.Session.Revoke(ctx, session.Token))
	found, err = repo.Session.FindValidSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, found)
}
