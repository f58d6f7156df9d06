package response

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AvailableRoomResponse struct {
	RoomInstanceID     uuid.UUID `json:"roomInstanceId"`
	RoomNumber         string    `json:"roomNumber"`
	Floor              int       `json:"floor"`
	RoomTypeID         uuid.UUID `json:"roomTypeId"`
	RoomTypeName       string    `json:"roomTypeName"`
	MaxGuests          int       `json:"maxGuests"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
	TotalAmountCents   int64     `json:"totalAmountCents"`
	Nights             int       `json:"nights"`
}

func FromAvailableRoomViews(views []queries.AvailableRoomView) []AvailableRoomResponse {
	resps := make([]AvailableRoomResponse, 0, len(views))
	for i := range views {
		var resp AvailableRoomResponse
		_ = copier.Copy(&resp, &views[i])
		resps = append(resps, resp)
	}
	return resps
}
