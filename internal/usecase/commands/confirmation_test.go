//go:build unit

package commands_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/pkg/confirmtoken"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/usecase/commands"
	"car-rental-core/internal/usecase/shared"
	"car-rental-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// tokenFromLink pulls the token out of an e-mailed confirmation link.
func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "/rental-confirm", u.Path)
	return u.Query().Get("token")
}

func TestSendConfirmation_ThenConfirmWithToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.createOffer(t, builder.NewOfferBuilder().Days(2))

	var link string
	f.email.EXPECT().
		Send(gomock.Any(), "anna@example.com", shared.EmailRentalConfirmation, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ shared.EmailTemplate, data map[string]any) error {
			link, _ = data["confirmation_link"].(string)
			assert.Equal(t, "2025-03-01 09:10:00Z", data["expires_at"])
			assert.Equal(t, "Anna Nowak", data["customer_name"])
			return nil
		})

	res, err := f.confirmations.SendConfirmation(ctx, o.ID(), builder.ExperiencedDriver)
	require.NoError(t, err)
	assert.Equal(t, o.ID(), res.OfferID)
	assert.Equal(t, fixtureNow.Add(10*time.Minute), res.ExpiresAt)
	require.True(t, strings.HasPrefix(link, "https://rent.example.com/rental-confirm?token="))

	token := tokenFromLink(t, link)
	valid, offerID, customerID := f.tokens.Validate(token)
	require.True(t, valid)
	assert.Equal(t, o.ID(), offerID)
	assert.Equal(t, builder.ExperiencedDriver, customerID)

	f.email.EXPECT().Send(gomock.Any(), "anna@example.com", shared.EmailRentalSuccess, gomock.Any()).Return(nil)

	f.clock.Add(9 * time.Minute)
	r, err := f.confirmations.ConfirmWithToken(ctx, token, builder.ExperiencedDriver)
	require.NoError(t, err)
	assert.Equal(t, o.ID(), r.OfferID())
	assert.Equal(t, rental.StatusConfirmed, r.Status())

	// Replaying the link is answered with a conflict.
	_, err = f.confirmations.ConfirmWithToken(ctx, token, builder.ExperiencedDriver)
	assert.ErrorIs(t, err, commands.ErrRentalAlreadyExists)
}

func TestSendConfirmation_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		offerID    func(id int64) int64
		customerID int64
		confirmed  bool
		wantKind   error
	}{
		{name: "unknown offer", offerID: func(int64) int64 { return 999 }, customerID: builder.ExperiencedDriver, wantKind: errs.ErrNotFound},
		{name: "offer of another customer", customerID: builder.NoviceDriver, wantKind: errs.ErrNotFound},
		{name: "already rented", customerID: builder.ExperiencedDriver, confirmed: true, wantKind: errs.ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			o := f.createOffer(t, builder.NewOfferBuilder())
			if tc.confirmed {
				_, err := f.rentals.Confirm(ctx, o.ID())
				require.NoError(t, err)
			}
			id := o.ID()
			if tc.offerID != nil {
				id = tc.offerID(id)
			}

			_, err := f.confirmations.SendConfirmation(ctx, id, tc.customerID)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.wantKind), "got %v", err)
		})
	}
}

func TestSendConfirmation_EmailFailureIsReturned(t *testing.T) {
	f := newFixture(t)
	o := f.createOffer(t, builder.NewOfferBuilder())
	f.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("sendgrid: 503"))

	_, err := f.confirmations.SendConfirmation(context.Background(), o.ID(), builder.ExperiencedDriver)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sendgrid: 503")
}

func TestConfirmWithToken_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		token      func(t *testing.T, f *fixture, offerID int64) string
		customerID int64
		wantErr    error
		wantKind   error
	}{
		{
			name: "expired",
			token: func(t *testing.T, f *fixture, offerID int64) string {
				tok, err := f.tokens.Issue(offerID, builder.ExperiencedDriver, 0)
				require.NoError(t, err)
				f.clock.Add(10*time.Minute + time.Second)
				return tok
			},
			customerID: builder.ExperiencedDriver,
			wantErr:    confirmtoken.ErrExpired,
			wantKind:   errs.ErrExpired,
		},
		{
			name: "tampered offer id",
			token: func(t *testing.T, f *fixture, offerID int64) string {
				tok, err := f.tokens.Issue(offerID, builder.ExperiencedDriver, 0)
				require.NoError(t, err)
				return "9" + tok
			},
			customerID: builder.ExperiencedDriver,
			wantErr:    confirmtoken.ErrInvalidSignature,
			wantKind:   errs.ErrValidation,
		},
		{
			name: "issued to another customer",
			token: func(t *testing.T, f *fixture, offerID int64) string {
				tok, err := f.tokens.Issue(offerID, builder.ExperiencedDriver, 0)
				require.NoError(t, err)
				return tok
			},
			customerID: builder.NoviceDriver,
			wantErr:    commands.ErrTokenCustomerMismatch,
			wantKind:   errs.ErrUnauthorized,
		},
		{
			name: "garbage",
			token: func(*testing.T, *fixture, int64) string {
				return "not-a-token"
			},
			wantErr:  confirmtoken.ErrMalformed,
			wantKind: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			o := f.createOffer(t, builder.NewOfferBuilder())

			_, err := f.confirmations.ConfirmWithToken(ctx, tc.token(t, f, o.ID()), tc.customerID)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, errs.Is(err, tc.wantKind), "got %v", err)

			_, err = f.store.CommandReads().RentalByOfferID(ctx, o.ID())
			assert.Error(t, err, "no rental may be created")
		})
	}
}

func TestValidateToken(t *testing.T) {
	f := newFixture(t)
	tok, err := f.tokens.Issue(12, 34, 0)
	require.NoError(t, err)

	claims, err := f.confirmations.ValidateToken(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, int64(12), claims.OfferID)
	assert.Equal(t, int64(34), claims.CustomerID)
}
