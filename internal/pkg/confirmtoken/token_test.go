//go:build unit

package confirmtoken_test

import (
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"car-rental-core/internal/pkg/clock"
	"car-rental-core/internal/pkg/confirmtoken"
	"car-rental-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

var issuedAt = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*confirmtoken.Service, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(issuedAt)
	svc, err := confirmtoken.NewService(secret, clk, 0, "https://rent.example.com/")
	require.NoError(t, err)
	return svc, clk
}

func TestIssueValidate_RoundTrip(t *testing.T) {
	svc, _ := newService(t)

	token, err := svc.Issue(123, 456, 24*time.Hour)
	require.NoError(t, err)

	valid, offerID, customerID := svc.Validate(token)
	assert.True(t, valid)
	assert.Equal(t, int64(123), offerID)
	assert.Equal(t, int64(456), customerID)
}

func TestIssue_WireFormat(t *testing.T) {
	svc, _ := newService(t)

	token, err := svc.Issue(7, 9, 0)
	require.NoError(t, err)

	parts := strings.Split(token, "_")
	require.Len(t, parts, 4)
	assert.Equal(t, "7", parts[0])
	assert.Equal(t, "9", parts[1])
	assert.Equal(t, "2025-01-15 12:10:00Z", parts[2], "default ttl is ten minutes")
	assert.Len(t, parts[3], 44, "base64 of a 32 byte digest")
}

func TestValidate_Tampering(t *testing.T) {
	svc, _ := newService(t)
	token, err := svc.Issue(123, 456, time.Hour)
	require.NoError(t, err)
	parts := strings.Split(token, "_")

	testCases := []struct {
		name   string
		mutate func(p []string)
	}{
		{name: "customer id changed", mutate: func(p []string) { p[1] = "457" }},
		{name: "offer id changed", mutate: func(p []string) { p[0] = "124" }},
		{name: "expiry extended", mutate: func(p []string) { p[2] = "2030-01-01 00:00:00Z" }},
		{name: "signature truncated", mutate: func(p []string) { p[3] = p[3][:10] }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cp := append([]string(nil), parts...)
			tc.mutate(cp)
			forged := strings.Join(cp, "_")

			valid, _, _ := svc.Validate(forged)
			assert.False(t, valid)

			_, err := svc.Parse(forged)
			assert.ErrorIs(t, err, confirmtoken.ErrInvalidSignature)
		})
	}
}

func TestValidate_OtherSecretRejected(t *testing.T) {
	svc, _ := newService(t)
	other, err := confirmtoken.NewService("another-secret", clock.NewMockClock(issuedAt), 0, "")
	require.NoError(t, err)

	token, err := other.Issue(1, 2, time.Hour)
	require.NoError(t, err)

	valid, _, _ := svc.Validate(token)
	assert.False(t, valid)
}

func TestValidate_Expiry(t *testing.T) {
	svc, clk := newService(t)
	token, err := svc.Issue(1, 2, time.Minute)
	require.NoError(t, err)

	clk.Add(time.Minute)
	valid, _, _ := svc.Validate(token)
	assert.True(t, valid, "a token is still valid at its exact expiry second")

	clk.Add(time.Second)
	valid, offerID, customerID := svc.Validate(token)
	assert.False(t, valid)
	assert.Zero(t, offerID)
	assert.Zero(t, customerID)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, confirmtoken.ErrExpired)
	assert.True(t, errs.Is(err, errs.ErrExpired))
}

func TestValidate_Malformed(t *testing.T) {
	svc, _ := newService(t)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "three fields", token: "1_2_2025-01-15 12:10:00Z"},
		{name: "five fields", token: "1_2_3_2025-01-15 12:10:00Z_sig"},
		{name: "non numeric offer", token: "x_2_2025-01-15 12:10:00Z_sig"},
		{name: "non numeric customer", token: "1_y_2025-01-15 12:10:00Z_sig"},
		{name: "bad expiry layout", token: "1_2_2025-01-15T12:10:00Z_sig"},
		{name: "bad escape sequence", token: "1_2_%zz_sig"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid, _, _ := svc.Validate(tc.token)
			assert.False(t, valid)

			_, err := svc.Parse(tc.token)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestLink_EscapesToken(t *testing.T) {
	svc, _ := newService(t)
	token, err := svc.Issue(123, 456, time.Hour)
	require.NoError(t, err)

	link := svc.Link(token)
	require.True(t, strings.HasPrefix(link, "https://rent.example.com/rental-confirm?token="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	carried := parsed.Query().Get("token")
	assert.Equal(t, token, carried)

	valid, offerID, _ := svc.Validate(carried)
	assert.True(t, valid)
	assert.Equal(t, int64(123), offerID)

	escaped := strings.TrimPrefix(parsed.RawQuery, "token=")
	assert.NotContains(t, escaped, "+")
	validEscaped, escapedOfferID, escapedCustomerID := svc.Validate(escaped)
	assert.True(t, validEscaped, "the encoded token from the link validates as is")
	assert.Equal(t, int64(123), escapedOfferID)
	assert.Equal(t, int64(456), escapedCustomerID)
}

func TestIssue_Errors(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Issue(0, 1, time.Hour)
	assert.ErrorIs(t, err, confirmtoken.ErrInvalidIDs)

	_, err = confirmtoken.NewService("", clock.NewRealClock(), time.Minute, "")
	assert.ErrorIs(t, err, confirmtoken.ErrEmptySecret)
}

func TestService_ConcurrentUse(t *testing.T) {
	svc, _ := newService(t)

	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			token, err := svc.Issue(id, id+1000, time.Hour)
			if !assert.NoError(t, err) {
				return
			}
			valid, offerID, customerID := svc.Validate(token)
			assert.True(t, valid)
			assert.Equal(t, id, offerID)
			assert.Equal(t, id+1000, customerID)
		}(i)
	}
	wg.Wait()
}
