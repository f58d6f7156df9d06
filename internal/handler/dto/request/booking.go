package request

import (
	"time"

	"hotel-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomInstanceID  uuid.UUID `json:"room_instance_id" binding:"required"`
	FirstName       string    `json:"first_name" binding:"required"`
	LastName        string    `json:"last_name" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Phone           string    `json:"phone" binding:"required"`
	CheckInDate     string    `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate    string    `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckInDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOutDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	return commands.CreateBookingInput{
		RoomInstanceID:  r.RoomInstanceID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
