package shared

import "context"

type EmailTemplate string

const (
	EmailRentalConfirmation EmailTemplate = "rental_confirmation"
	EmailRentalSuccess      EmailTemplate = "rental_success"
	EmailReturnInitiated    EmailTemplate = "return_initiated"
	EmailReturnInvoice      EmailTemplate = "return_invoice"
)

type EmailSender interface {
	Send(ctx context.Context, to string, template EmailTemplate, data map[string]any) error
}
