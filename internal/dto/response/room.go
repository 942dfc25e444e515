package response

import "room-booking/internal/data/entity"

type RoomTypeResponse struct {
	ID          int64  `json:"raumtyp_id"`
	Description string `json:"bezeichnung"`
}

type RoomResponse struct {
	ID       int64   `json:"zimmer_id"`
	Number   string  `json:"zimmernummer"`
	Capacity *int    `json:"kapazitaet"`
	RoomType *string `json:"raumtyp"`
}

type RoomPage struct {
	Notice
	RoomTypes []RoomTypeResponse `json:"room_types"`
	Rooms     []RoomResponse     `json:"rooms"`
}

func RoomTypeToResponse(rt *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{ID: rt.ID, Description: rt.Description}
}

func RoomToResponse(room *entity.RoomListing) RoomResponse {
	return RoomResponse{
		ID:       room.ID,
		Number:   room.Number,
		Capacity: room.Capacity,
		RoomType: room.TypeName,
	}
}
