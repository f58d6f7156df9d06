package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
)

// EmailDispatcher sends booking mail through a Resend-compatible HTTP
// API. With no API key configured it reports disabled and every send
// is recorded as skipped.
type EmailDispatcher struct {
	cfg    config.EmailConfig
	client *http.Client
}

func NewEmailDispatcher(cfg config.EmailConfig) *EmailDispatcher {
	return &EmailDispatcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (d *EmailDispatcher) Channel() string { return commands.ChannelEmail }

func (d *EmailDispatcher) Enabled() bool { return d.cfg.APIKey != "" }

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (d *EmailDispatcher) Send(ctx context.Context, msg commands.BookingMessage) error {
	payload := emailPayload{
		From:    fmt.Sprintf("%s <%s>", d.cfg.FromName, d.cfg.FromAddress),
		To:      []string{msg.GuestEmail},
		Subject: emailSubject(msg),
		HTML:    renderEmailBody(msg),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode email payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.APIBaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Authorization", "Bearer "+d.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "email API request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("email API returned %d: %s", resp.StatusCode, string(detail)))
	}

	return nil
}

func emailSubject(msg commands.BookingMessage) string {
	if msg.Kind == commands.MessageReminder {
		return fmt.Sprintf("Check-in reminder: %s on %s", msg.RoomTypeName, msg.CheckInDate.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("Booking confirmed: %s, %s – %s",
		msg.RoomTypeName,
		msg.CheckInDate.Format("Jan 2"),
		msg.CheckOutDate.Format("Jan 2, 2006"))
}

func renderEmailBody(msg commands.BookingMessage) string {
	heading := "Your booking is confirmed"
	if msg.Kind == commands.MessageReminder {
		heading = "Your check-in is tomorrow"
	}

	return fmt.Sprintf(`<h1>%s</h1>
<p>Dear %s %s,</p>
<ul>
  <li>Room: %s (Room %s)</li>
  <li>Check-in: %s</li>
  <li>Check-out: %s</li>
  <li>Nights: %d</li>
  <li>Guests: %d</li>
  <li>Total: %s</li>
</ul>
<p>Booking reference: %s</p>`,
		heading,
		msg.GuestFirstName, msg.GuestLastName,
		msg.RoomTypeName, msg.RoomNumber,
		msg.CheckInDate.Format("Monday, Jan 2, 2006"),
		msg.CheckOutDate.Format("Monday, Jan 2, 2006"),
		msg.Nights,
		msg.Guests,
		FormatAmount(msg.TotalAmountCents),
		msg.BookingID.String(),
	)
}

// FormatAmount renders integer cents as a dollar string for message
// templates. API responses keep raw cents.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
