package api

import (
	"net/http"

	reqdto "car-rental-core/internal/handler/dto/request"
	resdto "car-rental-core/internal/handler/dto/response"
	"car-rental-core/internal/handler/httperr"
	"car-rental-core/internal/handler/middleware"
	"car-rental-core/internal/usecase/commands"
	"car-rental-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// RentalHandler serves the customer side of the rental lifecycle.
type RentalHandler struct {
	confirmations commands.ConfirmationCommands
	rentals       commands.RentalCommands
	q             queries.RentalQueries
}

func NewRentalHandler(confirmations commands.ConfirmationCommands, rentals commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{confirmations: confirmations, rentals: rentals, q: q}
}

// @Summary Send confirmation e-mail
// @Description E-mail the customer a signed link that confirms one of their offers
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendConfirmationRequest true "Offer to confirm"
// @Success 202 {object} resdto.SendConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rentals/send-confirmation [post]
func (h *RentalHandler) SendConfirmation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.SendConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.confirmations.SendConfirmation(c.Request.Context(), req.OfferID, actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.SendConfirmationResponse{
		OfferID:   result.OfferID,
		ExpiresAt: result.ExpiresAt,
	})
}

// @Summary Validate confirmation token
// @Description Check a confirmation link before showing the confirm page
// @Tags rentals
// @Produce json
// @Param token query string true "Confirmation token"
// @Success 200 {object} resdto.TokenValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /rentals/validate-token [get]
func (h *RentalHandler) ValidateToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingToken, "Token is required", nil)
		return
	}
	claims, err := h.confirmations.ValidateToken(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTokenClaims(claims))
}

// @Summary Confirm rental
// @Description Turn the offer named by a confirmation token into a rental
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmRentalRequest true "Confirmation token"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /rentals/confirm [post]
func (h *RentalHandler) Confirm(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.ConfirmRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	r, err := h.confirmations.ConfirmWithToken(c.Request.Context(), req.Token, actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRental(c, actor, r.ID(), http.StatusCreated)
}

// @Summary List my rentals
// @Description List the caller's rentals, newest last, with keyset pagination
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param status query string false "confirmed, pending_return or completed"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.RentalListResponse
// @Failure 400 {object} httperr.Response
// @Router /rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	status, err := statusQuery(c, 0)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cursor, limit, err := pageQuery(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, next, err := h.q.ListByCustomer(c.Request.Context(), actor.ID, status, cursor, limit)
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

// @Summary Get rental
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
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
	h.respondRental(c, actor, id, http.StatusOK)
}

// @Summary Start return
// @Description Customer announces the car is coming back. The rental moves to pending_return.
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rentals/{id}/return [post]
func (h *RentalHandler) InitReturn(c *gin.Context) {
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
	if err := h.rentals.InitReturn(c.Request.Context(), id, actor.ID); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRental(c, actor, id, http.StatusOK)
}

func (h *RentalHandler) respondRental(c *gin.Context, actor queries.Actor, id int64, status int) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRentalView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
