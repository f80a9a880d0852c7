//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/pricing"
	"car-rental-core/internal/infra/memstore"
	"car-rental-core/internal/pkg/clock"
	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/pkg/confirmtoken"
	"car-rental-core/internal/usecase/commands"
	"car-rental-core/internal/usecase/shared"
	"car-rental-core/tests/common/builder"
	sharedmock "car-rental-core/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixtureNow = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store         *memstore.Store
	clock         *clock.MockClock
	email         *sharedmock.MockEmailSender
	tokens        *confirmtoken.Service
	offers        commands.OfferCommands
	rentals       commands.RentalCommands
	confirmations commands.ConfirmationCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := builder.NewFleet().Store()
	clk := clock.NewMockClock(fixtureNow)
	email := sharedmock.NewMockEmailSender(ctrl)

	tokens, err := confirmtoken.NewService("test-confirmation-secret", clk, 10*time.Minute, "https://rent.example.com")
	require.NoError(t, err)

	calc := pricing.NewCalculator(pricing.Rates{
		GPSDaily:       decimal.NewFromInt(10),
		ChildSeatDaily: decimal.NewFromInt(15),
	})
	availability := shared.NewAvailabilityChecker()
	cfg := config.NewTestConfig()

	rentals := commands.NewRentalUseCase(store, availability, email, clk)
	return &fixture{
		store:         store,
		clock:         clk,
		email:         email,
		tokens:        tokens,
		offers:        commands.NewOfferUseCase(store, availability, calc, clk, cfg),
		rentals:       rentals,
		confirmations: commands.NewConfirmationUseCase(store, tokens, rentals, email),
	}
}

func (f *fixture) allowEmails() {
	f.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) createOffer(t *testing.T, b *builder.OfferBuilder) *offer.Offer {
	t.Helper()
	res, err := f.offers.GetOrCreateOffer(context.Background(), b.BuildCommand())
	require.NoError(t, err)
	return res.Offer
}

// confirmedRental creates and confirms an offer for the default car.
func (f *fixture) confirmedRental(t *testing.T, b *builder.OfferBuilder) (int64, *offer.Offer) {
	t.Helper()
	o := f.createOffer(t, b)
	r, err := f.rentals.Confirm(context.Background(), o.ID())
	require.NoError(t, err)
	return r.ID(), o
}

func sharedFilterAll() shared.RentalFilter {
	return shared.RentalFilter{}
}

func criteriaOf(t *testing.T, b *builder.OfferBuilder) offer.Criteria {
	t.Helper()
	return b.BuildDomain().Criteria()
}
