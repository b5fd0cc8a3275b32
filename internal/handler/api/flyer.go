package api

import (
	"errors"
	"net/http"
	"time"

	"flyerboard/internal/domain/flyer"
	reqdto "flyerboard/internal/handler/dto/request"
	resdto "flyerboard/internal/handler/dto/response"
	"flyerboard/internal/handler/httperr"
	"flyerboard/internal/handler/middleware"
	"flyerboard/internal/pkg/errs"
	"flyerboard/internal/usecase/commands"
	"flyerboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FlyerHandler struct {
	flyerCommands commands.FlyerCommands
	flyerQueries  queries.FlyerQueries
	loc           *time.Location
}

func NewFlyerHandler(flyerCommands commands.FlyerCommands, flyerQueries queries.FlyerQueries, loc *time.Location) *FlyerHandler {
	return &FlyerHandler{
		flyerCommands: flyerCommands,
		flyerQueries:  flyerQueries,
		loc:           loc,
	}
}

// @Summary Post flyer
// @Description Post a new flyer, consuming one weekly quota slot
// @Tags flyers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PostFlyerRequest true "Flyer draft"
// @Success 201 {object} resdto.FlyerResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /flyers [post]
func (h *FlyerHandler) PostFlyer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user identity missing from context"), "Internal server error", nil)
		return
	}
	displayName, _ := middleware.GetDisplayName(c)

	var req reqdto.PostFlyerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	draft, err := req.ToDraft(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed",
			gin.H{"expiryDate": err.Error()})
		return
	}

	view, err := h.flyerCommands.PostFlyer(c.Request.Context(), userID, displayName, draft)
	if err != nil {
		var verr *flyer.ValidationError
		switch {
		case errors.As(err, &verr):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", verr.Fields)
		case errors.Is(err, errs.ErrQuotaExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Weekly posting limit reached", nil)
		case errors.Is(err, errs.ErrTransientFailure):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
				"Temporarily unable to process the request, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFlyerView(view))
}

// @Summary Get flyer
// @Description Get a single flyer by ID
// @Tags flyers
// @Produce json
// @Param id path string true "Flyer ID"
// @Success 200 {object} resdto.FlyerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /flyers/{id} [get]
func (h *FlyerHandler) GetFlyer(c *gin.Context) {
	id, ok := h.parseFlyerID(c)
	if !ok {
		return
	}

	view, err := h.flyerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlyerView(view))
}

// @Summary List flyers by category
// @Description List all flyers in a category, expired ones included
// @Tags flyers
// @Produce json
// @Param category path string true "Category ID"
// @Param sort query string false "Sort key: newest, most_viewed or most_reactions" default(newest)
// @Success 200 {array} resdto.FlyerResponse
// @Failure 400 {object} httperr.Response
// @Router /flyers/categories/{category} [get]
func (h *FlyerHandler) ListByCategory(c *gin.Context) {
	category := flyer.Category(c.Param("category"))

	key, ok := queries.ParseSortKey(c.Query("sort"))
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("unknown sort key"), "Unknown sort key", nil)
		return
	}

	views, err := h.flyerQueries.ByCategory(c.Request.Context(), category, key)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCategory) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown category", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlyerViews(views))
}

// @Summary Trending flyers
// @Description Top non-expired flyers ranked by combined views and reactions
// @Tags flyers
// @Produce json
// @Success 200 {array} resdto.FlyerResponse
// @Router /flyers/trending [get]
func (h *FlyerHandler) Trending(c *gin.Context) {
	views, err := h.flyerQueries.Trending(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlyerViews(views))
}

// @Summary Record view
// @Description Increment the flyer's view counter by one
// @Tags flyers
// @Produce json
// @Param id path string true "Flyer ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /flyers/{id}/views [post]
func (h *FlyerHandler) RecordView(c *gin.Context) {
	id, ok := h.parseFlyerID(c)
	if !ok {
		return
	}

	if err := h.flyerCommands.IncrementViews(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add reaction
// @Description Increment one of the flyer's reaction counters
// @Tags flyers
// @Accept json
// @Produce json
// @Param id path string true "Flyer ID"
// @Param request body reqdto.ReactionRequest true "Reaction kind"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /flyers/{id}/reactions [post]
func (h *FlyerHandler) AddReaction(c *gin.Context) {
	id, ok := h.parseFlyerID(c)
	if !ok {
		return
	}

	var req reqdto.ReactionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	err := h.flyerCommands.AddReaction(c.Request.Context(), id, flyer.ReactionKind(req.Kind))
	if err != nil {
		if errors.Is(err, errs.ErrInvalidReaction) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown reaction kind", nil)
			return
		}
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Report flyer
// @Description Flag a flyer for moderation review
// @Tags flyers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flyer ID"
// @Param request body reqdto.ReportRequest true "Report reason"
// @Success 202
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /flyers/{id}/report [post]
func (h *FlyerHandler) ReportFlyer(c *gin.Context) {
	reporterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user identity missing from context"), "Internal server error", nil)
		return
	}

	id, ok := h.parseFlyerID(c)
	if !ok {
		return
	}

	var req reqdto.ReportRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.flyerCommands.ReportFlyer(c.Request.Context(), id, reporterID, req.Reason); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

func (h *FlyerHandler) parseFlyerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid flyer ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *FlyerHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrFlyerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Flyer not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *FlyerHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrFlyerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Flyer not found", nil)
	case errors.Is(err, errs.ErrTransientFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			"Temporarily unable to process the request, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
