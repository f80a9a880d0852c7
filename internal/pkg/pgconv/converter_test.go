//go:build unit

package pgconv

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "140", "153.33", "-2.5", "0.0000000000000001"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			got, err := DecimalFromNumeric(DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		in      pgtype.Numeric
		wantErr error
	}{
		{name: "null", in: pgtype.Numeric{}, wantErr: ErrNullNumeric},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: ErrInvalidNumeric},
		{name: "infinity", in: pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}, wantErr: ErrInvalidNumeric},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecimalFromNumeric(tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDecimalFromNumeric_Scaled(t *testing.T) {
	got, err := DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(15333), Exp: -2, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "153.33", got.String())
}

func TestDateToPgtype_TruncatesToUTCDay(t *testing.T) {
	warsaw := time.FixedZone("CET", 3600)
	in := time.Date(2025, time.March, 10, 0, 30, 0, 0, warsaw) // 9th, 23:30 UTC

	got := DateToPgtype(in)
	assert.True(t, got.Valid)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), got.Time)
	assert.Equal(t, got.Time, DateFromPgtype(got))
}

func TestStringToPgtype(t *testing.T) {
	assert.False(t, StringToPgtype("").Valid)
	assert.Equal(t, "x", StringFromPgtype(StringToPgtype("x")))
	assert.Equal(t, "", StringFromPgtype(pgtype.Text{}))
}
