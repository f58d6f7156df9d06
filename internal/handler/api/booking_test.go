//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/common/testutil"
	commandsmock "hotel-booking-api/tests/mock/commands"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	expectedResult := &commands.CreateBookingResult{
		BookingID:        uuid.New(),
		Status:           "confirmed",
		Nights:           3,
		TotalAmountCents: 45000,
		EmailSent:        true,
		WhatsAppSent:     true,
	}

	missing := []testCaseBooking{
		{name: "missing field: room_instance_id (required)", mutate: testutil.Field("room_instance_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: first_name (required)", mutate: testutil.Field("first_name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in_date (required)", mutate: testutil.Field("check_in_date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_out_date (required)", mutate: testutil.Field("check_out_date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: guests (required)", mutate: testutil.Field("guests", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseBooking{
		{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "invalid date format", mutate: testutil.Field("check_in_date", "10/09/2026"), expectCode: http.StatusBadRequest},
		{name: "zero guests", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{missing, malformed}

	s.Run("success: returns 201 Created with notification status", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.BookingID, response.BookingID)
		s.Equal("confirmed", response.Status)
		s.Equal(3, response.Nights)
		s.Equal(int64(45000), response.TotalAmountCents)
		s.True(response.Notifications.EmailSent)
		s.True(response.Notifications.WhatsAppSent)
	})

	s.Run("success: 201 even when notifications fail", func() {
		degraded := *expectedResult
		degraded.EmailSent = false
		degraded.WhatsAppSent = false
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&degraded, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.False(response.Notifications.EmailSent)
		s.False(response.Notifications.WhatsAppSent)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "check-out before check-in",
				commandsError:  booking.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out date must be after check-in date",
			},
			{
				name:           "check-in in the past",
				commandsError:  booking.ErrPastCheckIn,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-in date cannot be in the past",
			},
			{
				name:           "guest count over capacity",
				commandsError:  &booking.CapacityError{MaxGuests: 2},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "This room can accommodate maximum 2 guests",
			},
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "overlapping booking",
				commandsError:  commands.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room is not available for the selected dates",
			},
			{
				name:           "availability check failed",
				commandsError:  commands.ErrAvailabilityCheckFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to check room availability",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.RoomNumber, response.RoomNumber)
		s.Equal(returnView.CheckInDate.Format("2006-01-02"), response.CheckInDate)
		s.Equal(returnView.CheckOutDate.Format("2006-01-02"), response.CheckOutDate)
		s.Equal(returnView.TotalAmountCents, response.TotalAmountCents)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
