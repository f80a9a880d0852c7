package api

import (
	"strconv"

	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated = errs.New("caller missing from context")
	errInvalidID       = errs.Define("id must be a positive integer", errs.ErrValidation)
	errInvalidStatus   = errs.Define("unknown rental status", errs.ErrValidation)
	errInvalidLimit    = errs.Define("limit must be an integer", errs.ErrValidation)
)

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// statusQuery parses ?status=. An empty value yields fallback.
func statusQuery(c *gin.Context, fallback rental.Status) (rental.Status, error) {
	v := c.Query("status")
	if v == "" {
		return fallback, nil
	}
	s, ok := rental.ParseStatus(v)
	if !ok {
		return 0, errInvalidStatus
	}
	return s, nil
}

func pageQuery(c *gin.Context) (*queries.Cursor, int, error) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			return nil, 0, errInvalidLimit
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit, nil
}

var errMissingToken = errs.Define("token is required", errs.ErrValidation)
