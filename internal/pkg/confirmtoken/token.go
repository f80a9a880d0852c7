// Package confirmtoken issues and checks the signed links that turn an offer
// into a rental. Tokens are stateless: validity rests on the HMAC signature
// and the embedded expiry only.
//
// Wire format:
//
//	{offerId}_{customerId}_{yyyy-MM-dd HH:mm:ssZ}_{base64(HMAC-SHA256(secret, first three fields))}
package confirmtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"
	"time"

	"car-rental-core/internal/pkg/clock"
	"car-rental-core/internal/pkg/errs"
)

const (
	ExpiryLayout = "2006-01-02 15:04:05Z"
	Separator    = "_"
	DefaultTTL   = 10 * time.Minute

	confirmPath = "/rental-confirm"
)

var (
	ErrMalformed        = errs.Define("malformed confirmation token", errs.ErrValidation)
	ErrInvalidSignature = errs.Define("confirmation token signature mismatch", errs.ErrValidation)
	ErrExpired          = errs.Define("confirmation token expired", errs.ErrExpired)
	ErrEmptySecret      = errs.New("confirmation token secret must not be empty")
	ErrInvalidIDs       = errs.Define("confirmation token ids must be positive", errs.ErrValidation)
)

type Claims struct {
	OfferID    int64
	CustomerID int64
	ExpiresAt  time.Time
}

type Service struct {
	secret      []byte
	clock       clock.Clock
	defaultTTL  time.Duration
	frontendURL string
}

func NewService(secret string, clk clock.Clock, defaultTTL time.Duration, frontendURL string) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Service{
		secret:      []byte(secret),
		clock:       clk,
		defaultTTL:  defaultTTL,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}, nil
}

func (s *Service) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Issue signs a token for the pair. A non-positive ttl falls back to the default.
func (s *Service) Issue(offerID, customerID int64, ttl time.Duration) (string, error) {
	if offerID <= 0 || customerID <= 0 {
		return "", ErrInvalidIDs
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	expiry := s.clock.Now().Add(ttl).UTC().Format(ExpiryLayout)
	payload := strings.Join([]string{
		strconv.FormatInt(offerID, 10),
		strconv.FormatInt(customerID, 10),
		expiry,
	}, Separator)
	return payload + Separator + s.sign(payload), nil
}

// Validate reports whether the token is authentic and unexpired.
func (s *Service) Validate(token string) (bool, int64, int64) {
	claims, err := s.Parse(token)
	if err != nil {
		return false, 0, 0
	}
	return true, claims.OfferID, claims.CustomerID
}

// Parse is Validate with a typed failure reason.
func (s *Service) Parse(token string) (Claims, error) {
	raw, err := url.PathUnescape(token)
	if err != nil {
		return Claims{}, errs.Wrapf(ErrMalformed, "unescape: %v", err)
	}

	parts := strings.Split(raw, Separator)
	if len(parts) != 4 {
		return Claims{}, ErrMalformed
	}

	offerID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Claims{}, ErrMalformed
	}
	customerID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Claims{}, ErrMalformed
	}
	expiresAt, err := time.Parse(ExpiryLayout, parts[2])
	if err != nil {
		return Claims{}, ErrMalformed
	}

	payload := strings.Join(parts[:3], Separator)
	expected := s.sign(payload)
	if !hmac.Equal([]byte(expected), []byte(parts[3])) {
		return Claims{}, ErrInvalidSignature
	}

	if expiresAt.Before(s.clock.Now()) {
		return Claims{}, ErrExpired
	}

	return Claims{OfferID: offerID, CustomerID: customerID, ExpiresAt: expiresAt.UTC()}, nil
}

// Link embeds the token in the frontend confirmation URL. Spaces are escaped
// as %20, not '+', so the still-encoded value round-trips through Parse.
func (s *Service) Link(token string) string {
	return s.frontendURL + confirmPath + "?token=" + escapeToken(token)
}

func escapeToken(token string) string {
	return strings.ReplaceAll(url.QueryEscape(token), "+", "%20")
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
