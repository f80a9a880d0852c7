package queries

import (
	"encoding/base64"
	"strconv"
	"strings"

	"car-rental-core/internal/pkg/errs"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Define("invalid cursor", errs.ErrValidation)

// Cursor points past the last rental of a page. Rentals are listed by id, so
// the id alone is a stable keyset position.
type Cursor struct {
	After string `json:"after,omitempty"`
}

func EncodeAfterCursor(id int64) string {
	return base64.URLEncoding.EncodeToString([]byte(CursorVersionV1 + ":" + strconv.FormatInt(id, 10)))
}

func DecodeAfterCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, errs.Wrapf(ErrInvalidCursor, "decode: %v", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, ErrInvalidCursor
	}
	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil || id < 0 {
		return 0, ErrInvalidCursor
	}
	return id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
