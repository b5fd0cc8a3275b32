//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"flyerboard/internal/handler/api"
	resdto "flyerboard/internal/handler/dto/response"
	"flyerboard/internal/handler/httperr"
	"flyerboard/internal/pkg/errs"
	"flyerboard/internal/usecase/queries"
	"flyerboard/tests/common/builder"
	"flyerboard/tests/common/httptest"
	queriesmock "flyerboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockFlyerQueries
	handler     *api.UserHandler
	authedUser  uuid.UUID
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockFlyerQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockQueries)
	s.authedUser = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing bearer token"), "Access token required", nil)
			return
		}
		c.Set("user_id", s.authedUser)
		c.Set("display_name", "Test Poster")
		c.Next()
	}

	s.router.GET("/users/me/flyers", authMiddleware, s.handler.ListMyFlyers)
	s.router.GET("/users/me/stats", authMiddleware, s.handler.MyStats)
	s.router.GET("/users/:id/flyers", s.handler.ListUserFlyers)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestListUserFlyers() {
	ownerID := uuid.New()
	url := "/users/" + ownerID.String() + "/flyers"

	s.Run("success: returns owner flyers", func() {
		items := []*queries.FlyerView{
			builder.NewFlyerBuilder().WithOwnerID(ownerID).BuildView(),
			builder.NewFlyerBuilder().WithOwnerID(ownerID).BuildView(),
		}
		s.mockQueries.EXPECT().ByOwner(gomock.Any(), ownerID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.FlyerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list for an owner with no flyers", func() {
		s.mockQueries.EXPECT().ByOwner(gomock.Any(), ownerID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/invalid-uuid/flyers", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID format")
	})
}

func (s *UserHandlerTestSuite) TestListMyFlyers() {
	url := "/users/me/flyers"

	s.Run("success: lists the caller's flyers", func() {
		items := []*queries.FlyerView{
			builder.NewFlyerBuilder().WithOwnerID(s.authedUser).BuildView(),
		}
		s.mockQueries.EXPECT().ByOwner(gomock.Any(), s.authedUser).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.FlyerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *UserHandlerTestSuite) TestMyStats() {
	url := "/users/me/stats"

	s.Run("success: returns dashboard stats", func() {
		stats := &queries.UserStatsView{
			UserID:               s.authedUser,
			DisplayName:          "Test Poster",
			FlyerCount:           3,
			TotalViews:           150,
			TotalLikes:           12,
			FlyersPostedThisWeek: 1,
			WeeklyLimit:          2,
			Remaining:            1,
		}
		s.mockQueries.EXPECT().UserStats(gomock.Any(), s.authedUser).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(3), response.FlyerCount)
		s.Equal(int64(150), response.TotalViews)
		s.Equal(1, response.FlyersPostedThisWeek)
		s.Equal(1, response.Remaining)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}
