package api

import (
	"net/http"

	resdto "flyerboard/internal/handler/dto/response"
	"flyerboard/internal/handler/httperr"
	"flyerboard/internal/handler/middleware"
	"flyerboard/internal/pkg/errs"
	"flyerboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	flyerQueries queries.FlyerQueries
}

func NewUserHandler(flyerQueries queries.FlyerQueries) *UserHandler {
	return &UserHandler{
		flyerQueries: flyerQueries,
	}
}

// @Summary List flyers by owner
// @Description List all flyers posted by a user, newest first
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.FlyerResponse
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/flyers [get]
func (h *UserHandler) ListUserFlyers(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format", nil)
		return
	}

	h.respondOwnerFlyers(c, ownerID)
}

// @Summary List own flyers
// @Description List all flyers posted by the current user, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FlyerResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me/flyers [get]
func (h *UserHandler) ListMyFlyers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user identity missing from context"), "Internal server error", nil)
		return
	}

	h.respondOwnerFlyers(c, userID)
}

// @Summary Own dashboard stats
// @Description Aggregate totals and remaining weekly quota for the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserStatsResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me/stats [get]
func (h *UserHandler) MyStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user identity missing from context"), "Internal server error", nil)
		return
	}

	stats, err := h.flyerQueries.UserStats(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserStatsView(stats))
}

func (h *UserHandler) respondOwnerFlyers(c *gin.Context, ownerID uuid.UUID) {
	views, err := h.flyerQueries.ByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlyerViews(views))
}
