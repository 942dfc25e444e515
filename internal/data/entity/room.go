package entity

// RoomType maps table Raumtyp.
type RoomType struct {
	ID          int64  `db:"raumtyp_id"`
	Description string `db:"bezeichnung"`
}

// Room maps table Zimmer. Capacity and RoomTypeID are nullable.
type Room struct {
	ID         int64  `db:"zimmer_id"`
	Number     string `db:"zimmernummer"`
	Capacity   *int   `db:"kapazitaet"`
	RoomTypeID *int64 `db:"raumtyp_id"`
	Floor      int    `db:"stockwerk"`
}

// RoomListing is a room joined with its type label.
type RoomListing struct {
	ID       int64
	Number   string
	Capacity *int
	TypeName *string
}
