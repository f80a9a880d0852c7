package api

import (
	"net/http"

	"car-rental-core/internal/domain/rental"
	reqdto "car-rental-core/internal/handler/dto/request"
	resdto "car-rental-core/internal/handler/dto/response"
	"car-rental-core/internal/handler/httperr"
	"car-rental-core/internal/handler/middleware"
	"car-rental-core/internal/usecase/commands"
	"car-rental-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// WorkerHandler serves employees processing returns.
type WorkerHandler struct {
	rentals commands.RentalCommands
	q       queries.RentalQueries
}

func NewWorkerHandler(rentals commands.RentalCommands, q queries.RentalQueries) *WorkerHandler {
	return &WorkerHandler{rentals: rentals, q: q}
}

// @Summary Rental worklist
// @Description List rentals in one status. Defaults to pending_return.
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Param status query string false "confirmed, pending_return or completed"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.RentalListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /worker/rentals [get]
func (h *WorkerHandler) List(c *gin.Context) {
	status, err := statusQuery(c, rental.StatusPendingReturn)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cursor, limit, err := pageQuery(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, next, err := h.q.ListByStatus(c.Request.Context(), status, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRentalList(items, next)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Accept return
// @Description Record the inspection and complete a rental that is pending return
// @Tags worker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Param request body reqdto.AcceptReturnRequest true "Inspection"
// @Success 201 {object} resdto.ReturnResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /worker/rentals/{id}/accept-return [post]
func (h *WorkerHandler) AcceptReturn(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := pathID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.AcceptReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.rentals.ProcessReturn(c.Request.Context(), req.ToCommand(id, actor.ID)); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondReturn(c, id, http.StatusCreated)
}

// @Summary Get return
// @Description The return record of a completed rental
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} resdto.ReturnResponse
// @Failure 404 {object} httperr.Response
// @Router /worker/rentals/{id}/return [get]
func (h *WorkerHandler) GetReturn(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	h.respondReturn(c, id, http.StatusOK)
}

func (h *WorkerHandler) respondReturn(c *gin.Context, rentalID int64, status int) {
	view, err := h.q.LatestReturn(c.Request.Context(), rentalID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReturnView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
