package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
)

// WhatsAppDispatcher sends booking messages through the Twilio
// messaging API. Twilio expects form-encoded bodies and whatsapp:
// prefixed numbers.
type WhatsAppDispatcher struct {
	cfg    config.WhatsAppConfig
	client *http.Client
}

func NewWhatsAppDispatcher(cfg config.WhatsAppConfig) *WhatsAppDispatcher {
	return &WhatsAppDispatcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (d *WhatsAppDispatcher) Channel() string { return commands.ChannelWhatsApp }

func (d *WhatsAppDispatcher) Enabled() bool {
	return d.cfg.AccountSID != "" && d.cfg.AuthToken != "" && d.cfg.FromNumber != ""
}

func (d *WhatsAppDispatcher) Send(ctx context.Context, msg commands.BookingMessage) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", d.cfg.APIBaseURL, d.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", whatsappAddr(d.cfg.FromNumber))
	form.Set("To", whatsappAddr(msg.GuestPhone))
	form.Set("Body", renderWhatsAppBody(msg))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.Wrap(err, "failed to build whatsapp request")
	}
	req.SetBasicAuth(d.cfg.AccountSID, d.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "whatsapp API request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("whatsapp API returned %d: %s", resp.StatusCode, string(detail)))
	}

	return nil
}

func whatsappAddr(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

func renderWhatsAppBody(msg commands.BookingMessage) string {
	if msg.Kind == commands.MessageReminder {
		return fmt.Sprintf(
			"Hi %s! A reminder that your stay in %s (Room %s) starts tomorrow, %s. We look forward to welcoming you.",
			msg.GuestFirstName,
			msg.RoomTypeName,
			msg.RoomNumber,
			msg.CheckInDate.Format("Jan 2"),
		)
	}

	return fmt.Sprintf(
		"Hi %s! Your booking is confirmed: %s (Room %s), %s – %s, %d night(s), %d guest(s). Total %s. Reference %s.",
		msg.GuestFirstName,
		msg.RoomTypeName,
		msg.RoomNumber,
		msg.CheckInDate.Format("Jan 2"),
		msg.CheckOutDate.Format("Jan 2, 2006"),
		msg.Nights,
		msg.Guests,
		FormatAmount(msg.TotalAmountCents),
		msg.BookingID.String(),
	)
}
