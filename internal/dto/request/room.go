package request

// SaveRoomRequest creates a room or updates an existing one. Blank
// capacity or room type keep the stored value.
type SaveRoomRequest struct {
	Number     string `json:"zimmernummer" form:"zimmernummer" validate:"required,max=20"`
	Capacity   string `json:"kapazitaet" form:"kapazitaet" validate:"omitempty,numeric"`
	RoomTypeID string `json:"raumtyp_id" form:"raumtyp_id" validate:"omitempty,numeric"`
}
