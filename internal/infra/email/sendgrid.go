package email

import (
	"context"
	"log/slog"

	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/usecase/shared"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	ErrUnknownTemplate = errs.New("no sendgrid template configured")
	ErrDeliveryFailed  = errs.New("sendgrid rejected the message")
)

// MailClient is the part of *sendgrid.Client the sender uses.
type MailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender delivers dynamic-template mails. Each EmailTemplate maps to
// a SendGrid template id from configuration.
type SendGridSender struct {
	client    MailClient
	from      *mail.Email
	templates map[shared.EmailTemplate]string
}

func NewSendGridSender(cfg config.EmailConfig) *SendGridSender {
	return NewSendGridSenderWithClient(sendgrid.NewSendClient(cfg.SendGridAPIKey), cfg)
}

func NewSendGridSenderWithClient(client MailClient, cfg config.EmailConfig) *SendGridSender {
	return &SendGridSender{
		client: client,
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
		templates: map[shared.EmailTemplate]string{
			shared.EmailRentalConfirmation: cfg.ConfirmationTemplateID,
			shared.EmailRentalSuccess:      cfg.SuccessTemplateID,
			shared.EmailReturnInitiated:    cfg.ReturnInitiatedTemplateID,
			shared.EmailReturnInvoice:      cfg.ReturnInvoiceTemplateID,
		},
	}
}

func (s *SendGridSender) Send(ctx context.Context, to string, template shared.EmailTemplate, data map[string]any) error {
	templateID := s.templates[template]
	if templateID == "" {
		return errs.Wrapf(ErrUnknownTemplate, "template %s", template)
	}

	message := mail.NewV3Mail()
	message.SetFrom(s.from)
	message.SetTemplateID(templateID)

	personalization := mail.NewPersonalization()
	name, _ := data["customer_name"].(string)
	personalization.AddTos(mail.NewEmail(name, to))
	for key, value := range data {
		personalization.SetDynamicTemplateData(key, value)
	}
	message.AddPersonalizations(personalization)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrapf(err, "failed to send %s e-mail", template)
	}
	if response.StatusCode >= 400 {
		return errs.Wrapf(ErrDeliveryFailed, "template %s: status %d, body: %s", template, response.StatusCode, response.Body)
	}

	slog.Debug("e-mail sent", "template", template, "status", response.StatusCode)
	return nil
}

// LogSender only logs. It stands in for SendGrid when no API key is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (LogSender) Send(_ context.Context, to string, template shared.EmailTemplate, data map[string]any) error {
	slog.Info("e-mail delivery skipped", "template", template, "to", to, "fields", len(data))
	return nil
}

// NewSender picks SendGrid when an API key is present.
func NewSender(cfg config.EmailConfig) shared.EmailSender {
	if cfg.SendGridAPIKey == "" {
		slog.Warn("SENDGRID_API_KEY is not set, e-mails will only be logged")
		return NewLogSender()
	}
	return NewSendGridSender(cfg)
}
