package response

import (
	"time"

	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomInstanceID   uuid.UUID `json:"roomInstanceId"`
	RoomNumber       string    `json:"roomNumber"`
	RoomTypeName     string    `json:"roomTypeName"`
	GuestFirstName   string    `json:"guestFirstName"`
	GuestLastName    string    `json:"guestLastName"`
	GuestEmail       string    `json:"guestEmail"`
	GuestPhone       string    `json:"guestPhone"`
	CheckInDate      string    `json:"checkInDate"`
	CheckOutDate     string    `json:"checkOutDate"`
	Nights           int       `json:"nights"`
	Guests           int       `json:"guests"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	Status           string    `json:"status"`
	SpecialRequests  *string   `json:"specialRequests,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	// Field names line up with the view; dates need formatting.
	_ = copier.Copy(&resp, view)
	resp.CheckInDate = view.CheckInDate.Format(time.DateOnly)
	resp.CheckOutDate = view.CheckOutDate.Format(time.DateOnly)
	return &resp
}

func FromBookingViews(views []queries.BookingView) []BookingResponse {
	resps := make([]BookingResponse, 0, len(views))
	for i := range views {
		resps = append(resps, *FromBookingView(&views[i]))
	}
	return resps
}

// NotificationStatus carries per-channel delivery warnings. False means
// the guest was not notified on that channel; the booking itself stands.
type NotificationStatus struct {
	EmailSent    bool `json:"emailSent"`
	WhatsAppSent bool `json:"whatsappSent"`
}

type CreateBookingResponse struct {
	BookingID        uuid.UUID          `json:"bookingId"`
	Status           string             `json:"status"`
	Nights           int                `json:"nights"`
	TotalAmountCents int64              `json:"totalAmountCents"`
	Notifications    NotificationStatus `json:"notifications"`
}

func FromCreateBookingResult(result *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:        result.BookingID,
		Status:           result.Status,
		Nights:           result.Nights,
		TotalAmountCents: result.TotalAmountCents,
		Notifications: NotificationStatus{
			EmailSent:    result.EmailSent,
			WhatsAppSent: result.WhatsAppSent,
		},
	}
}
