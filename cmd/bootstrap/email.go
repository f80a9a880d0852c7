package bootstrap

import (
	"car-rental-core/internal/infra/email"
	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var EmailModule = fx.Module("email",
	fx.Provide(
		NewEmailSender,
	),
)

func NewEmailSender(cfg config.Config) shared.EmailSender {
	return email.NewSender(cfg.Email)
}
