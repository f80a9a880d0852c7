package api

import (
	"net/http"
	"strconv"

	reqdto "car-rental-core/internal/handler/dto/request"
	resdto "car-rental-core/internal/handler/dto/response"
	"car-rental-core/internal/handler/httperr"
	"car-rental-core/internal/handler/middleware"
	"car-rental-core/internal/usecase/commands"
	"car-rental-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Get or create offer
// @Description Price a car for a date range. Repeating the same request returns the existing offer.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer request"
// @Success 200 {object} resdto.OfferResponse "Existing offer"
// @Success 201 {object} resdto.OfferResponse "New offer"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.cmds.GetOrCreateOffer(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, result.Offer.ID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}
	res, err := resdto.FromOfferView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res.Existing = result.Existing

	status := http.StatusCreated
	if result.Existing {
		status = http.StatusOK
	}
	c.Header("Location", "/api/offers/"+strconv.FormatInt(view.ID, 10))
	c.JSON(status, res)
}

// @Summary Get offer
// @Description Get an offer by ID. Customers only see their own offers.
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
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
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOfferView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
