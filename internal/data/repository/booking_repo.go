package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	// ErrOverlap is returned when a booking would intersect an existing one.
	ErrOverlap = errors.New("booking overlaps an existing booking")
	// ErrRoomNotFound is returned when a booking references an unknown room.
	ErrRoomNotFound = errors.New("room not found")
)

const conflictQuery = `
	SELECT buchung_id, zimmer_id, nutzer_id, startdatum, enddatum
	FROM Buchung
	WHERE zimmer_id = $1
	  AND NOT (enddatum < $2 OR startdatum > $3)
	LIMIT 1
`

type BookingRepository interface {
	// Create inserts the booking unless the room is already booked for an
	// overlapping range. The check and the insert share one transaction
	// holding a lock on the room row, so concurrent requests for the same
	// room are serialized.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByUserID(ctx context.Context, userID int64) ([]*entity.BookingListing, error)
	FindOwned(ctx context.Context, id, userID int64) (*entity.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	err := database.WithTx(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var roomID int64
		err := tx.QueryRow(ctx,
			`SELECT zimmer_id FROM Zimmer WHERE zimmer_id = $1 FOR UPDATE`,
			booking.RoomID,
		).Scan(&roomID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("lock room %d: %w", booking.RoomID, err)
		}

		conflict, err := findConflict(ctx, tx, booking.RoomID, booking.StartDate, booking.EndDate)
		if err != nil {
			return err
		}
		if conflict != nil {
			return ErrOverlap
		}

		query := `
			INSERT INTO Buchung (startdatum, enddatum, zimmer_id, nutzer_id)
			VALUES ($1, $2, $3, $4)
			RETURNING buchung_id
		`
		return tx.QueryRow(ctx, query,
			booking.StartDate,
			booking.EndDate,
			booking.RoomID,
			booking.UserID,
		).Scan(&booking.ID)
	})

	if errors.Is(err, ErrOverlap) || errors.Is(err, ErrRoomNotFound) {
		return err
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("room_id", booking.RoomID),
			zap.Int64("user_id", booking.UserID),
		)
		return fmt.Errorf("create booking for room %d: %w", booking.RoomID, err)
	}

	return nil
}

func findConflict(ctx context.Context, q database.Querier, roomID int64, start, end time.Time) (*entity.Booking, error) {
	var b entity.Booking
	err := q.QueryRow(ctx, conflictQuery, roomID, start, end).Scan(
		&b.ID,
		&b.RoomID,
		&b.UserID,
		&b.StartDate,
		&b.EndDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find conflicting booking for room %d: %w", roomID, err)
	}
	return &b, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.BookingListing, error) {
	query := `
		SELECT b.buchung_id, z.zimmernummer, b.startdatum, b.enddatum
		FROM Buchung b
		JOIN Zimmer z ON b.zimmer_id = z.zimmer_id
		WHERE b.nutzer_id = $1
		ORDER BY b.startdatum
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find bookings by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	var bookings []*entity.BookingListing
	for rows.Next() {
		var b entity.BookingListing
		if err := rows.Scan(&b.ID, &b.RoomNumber, &b.StartDate, &b.EndDate); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) FindOwned(ctx context.Context, id, userID int64) (*entity.Booking, error) {
	query := `
		SELECT buchung_id, zimmer_id, nutzer_id, startdatum, enddatum
		FROM Buchung
		WHERE buchung_id = $1 AND nutzer_id = $2
	`

	var b entity.Booking
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&b.ID,
		&b.RoomID,
		&b.UserID,
		&b.StartDate,
		&b.EndDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find owned booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find booking %d: %w", id, err)
	}

	return &b, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM Buchung WHERE buchung_id = $1`

	n, err := database.Write(ctx, r.db, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking", zap.Error(err), zap.Int64("booking_id", id))
		return fmt.Errorf("delete booking %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}
