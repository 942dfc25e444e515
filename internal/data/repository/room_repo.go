package repository

import (
	"context"
	"errors"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	FindRoomTypes(ctx context.Context) ([]*entity.RoomType, error)
	FindByNumber(ctx context.Context, number string) (*entity.Room, error)
	// FindAll lists every room, typed or not.
	FindAll(ctx context.Context) ([]*entity.RoomListing, error)
	// FindBookable lists rooms that have a room type.
	FindBookable(ctx context.Context) ([]*entity.RoomListing, error)
	Create(ctx context.Context, room *entity.Room) error
	// UpdatePartial overwrites capacity and room type only where a value is given.
	UpdatePartial(ctx context.Context, number string, capacity *int, roomTypeID *int64) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) FindRoomTypes(ctx context.Context) ([]*entity.RoomType, error) {
	query := `SELECT raumtyp_id, bezeichnung FROM Raumtyp ORDER BY bezeichnung`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find room types", zap.Error(err))
		return nil, fmt.Errorf("find room types: %w", err)
	}
	defer rows.Close()

	var types []*entity.RoomType
	for rows.Next() {
		var rt entity.RoomType
		if err := rows.Scan(&rt.ID, &rt.Description); err != nil {
			r.log.Error("Failed to scan room type row", zap.Error(err))
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		types = append(types, &rt)
	}

	return types, rows.Err()
}

func (r *roomRepository) FindByNumber(ctx context.Context, number string) (*entity.Room, error) {
	query := `
		SELECT zimmer_id, zimmernummer, kapazitaet, raumtyp_id, stockwerk
		FROM Zimmer
		WHERE zimmernummer = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, number).Scan(
		&room.ID,
		&room.Number,
		&room.Capacity,
		&room.RoomTypeID,
		&room.Floor,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by number", zap.Error(err), zap.String("number", number))
		return nil, fmt.Errorf("find room %s: %w", number, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.RoomListing, error) {
	query := `
		SELECT z.zimmer_id, z.zimmernummer, z.kapazitaet, r.bezeichnung
		FROM Zimmer z
		LEFT JOIN Raumtyp r ON z.raumtyp_id = r.raumtyp_id
		ORDER BY z.zimmernummer
	`

	rooms, err := r.scanListings(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (r *roomRepository) FindBookable(ctx context.Context) ([]*entity.RoomListing, error) {
	query := `
		SELECT z.zimmer_id, z.zimmernummer, z.kapazitaet, r.bezeichnung
		FROM Zimmer z
		JOIN Raumtyp r ON z.raumtyp_id = r.raumtyp_id
		ORDER BY z.zimmernummer
	`

	rooms, err := r.scanListings(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookable rooms", zap.Error(err))
		return nil, fmt.Errorf("list bookable rooms: %w", err)
	}
	return rooms, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO Zimmer (zimmernummer, kapazitaet, raumtyp_id, stockwerk)
		VALUES ($1, $2, $3, $4)
		RETURNING zimmer_id
	`

	err := r.db.QueryRow(ctx, query, room.Number, room.Capacity, room.RoomTypeID, room.Floor).Scan(&room.ID)
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("create room %s: %w", room.Number, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create room", zap.Error(err), zap.String("number", room.Number))
		return fmt.Errorf("create room %s: %w", room.Number, err)
	}

	return nil
}

func (r *roomRepository) UpdatePartial(ctx context.Context, number string, capacity *int, roomTypeID *int64) error {
	query := `
		UPDATE Zimmer
		SET kapazitaet = COALESCE($1, kapazitaet),
		    raumtyp_id = COALESCE($2, raumtyp_id)
		WHERE zimmernummer = $3
	`

	n, err := database.Write(ctx, r.db, query, capacity, roomTypeID, number)
	if err != nil {
		r.log.Error("Failed to update room", zap.Error(err), zap.String("number", number))
		return fmt.Errorf("update room %s: %w", number, err)
	}
	if n == 0 {
		return fmt.Errorf("update room %s: %w", number, pgx.ErrNoRows)
	}

	return nil
}

func (r *roomRepository) scanListings(ctx context.Context, query string) ([]*entity.RoomListing, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*entity.RoomListing
	for rows.Next() {
		var room entity.RoomListing
		if err := rows.Scan(&room.ID, &room.Number, &room.Capacity, &room.TypeName); err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, rows.Err()
}
