package httperr

import (
	"net/http"

	"car-rental-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

const msgInternal = "Internal server error"

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = errs.Kind(err)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort derives status and message from the error kind. Errors without a
// kind are reported as a bare 500 so internals never leak.
func Abort(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := errs.PublicMessage(err)
	if status == http.StatusInternalServerError || msg == "" {
		msg = msgInternal
	}
	AbortWithError(c, status, err, msg, nil)
}

func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict), errs.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrExpired):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
