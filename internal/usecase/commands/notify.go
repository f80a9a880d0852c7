package commands

import (
	"context"
	"log/slog"
	"maps"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/pricing"
	"car-rental-core/internal/usecase/shared"
)

// offerMail resolves the recipient of an offer and the template fields every
// rental e-mail shares.
func offerMail(ctx context.Context, reads shared.CommandReads, o *offer.Offer) (string, map[string]any, error) {
	customer, err := reads.CustomerByID(ctx, o.CustomerID())
	if err != nil {
		return "", nil, notFoundAs(err, ErrCustomerNotFound)
	}
	car, err := reads.CarByID(ctx, o.CarID())
	if err != nil {
		return "", nil, notFoundAs(err, ErrCarNotFound)
	}
	return customer.Email, map[string]any{
		"customer_name":  customer.FullName(),
		"car":            car.DisplayName(),
		"offer_id":       o.ID(),
		"start_date":     o.Dates().Start().Format(offer.DateLayout),
		"end_date":       o.Dates().End().Format(offer.DateLayout),
		"total_price":    o.TotalPrice().StringFixed(pricing.Places),
		"has_gps":        o.HasGPS(),
		"has_child_seat": o.HasChildSeat(),
	}, nil
}

// notifyAfterCommit sends a rental e-mail once the state change is durable.
// Failures are logged and swallowed.
func notifyAfterCommit(ctx context.Context, sender shared.EmailSender, reads shared.CommandReads, o *offer.Offer, template shared.EmailTemplate, extra map[string]any) {
	to, data, err := offerMail(ctx, reads, o)
	if err != nil {
		slog.Warn("failed to prepare e-mail", "template", template, "offer_id", o.ID(), "error", err.Error())
		return
	}
	maps.Copy(data, extra)
	if err := sender.Send(ctx, to, template, data); err != nil {
		slog.Warn("failed to send e-mail", "template", template, "offer_id", o.ID(), "error", err.Error())
	}
}
