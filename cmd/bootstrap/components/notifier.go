package components

import (
	"hotel-booking-api/internal/infra/notifier"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewDispatchers,
	),
)

// Channel order is fixed: email first, then WhatsApp. Both run
// concurrently at dispatch time, so order only affects logs.
func NewDispatchers(cfg config.Config) []commands.Dispatcher {
	return []commands.Dispatcher{
		notifier.NewEmailDispatcher(cfg.Email),
		notifier.NewWhatsAppDispatcher(cfg.WhatsApp),
	}
}
