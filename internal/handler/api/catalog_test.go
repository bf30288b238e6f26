//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/handler/api"
	resdto "legalbook/internal/handler/dto/response"
	"legalbook/internal/usecase/queries"
	"legalbook/tests/common/builder"
	"legalbook/tests/common/httptest"
	queriesmock "legalbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCatalog *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCatalog)

	// Public endpoints, no auth middleware.
	s.router.GET("/consultations/categories", s.handler.ListCategories)
	s.router.GET("/consultations/categories/:id/availability", s.handler.GetAvailability)
	s.router.GET("/consultations/categories/:id/slot-check", s.handler.CheckSlot)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListCategories() {
	url := "/consultations/categories"

	s.Run("success: returns all categories with unit prices", func() {
		views := []*queries.CategoryView{
			builder.NewCategoryBuilder().BuildView(),
			builder.NewCategoryBuilder().With(func(b *builder.CategoryBuilder) {
				b.Name = "Tax Consulting"
				b.PricePer15MinCents = 7000
			}).BuildView(),
		}
		s.mockCatalog.EXPECT().
			ListCategories(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res []*resdto.CategoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal("Tax Consulting", res[1].Name)
		s.Equal(int64(7000), res[1].PricePer15MinCents)
	})
}

func (s *CatalogHandlerTestSuite) TestGetAvailability() {
	categoryID := uuid.New()
	date := builder.Tomorrow().Format("2006-01-02")
	url := "/consultations/categories/" + categoryID.String() + "/availability?date=" + date

	s.Run("success: returns booked start times", func() {
		s.mockCatalog.EXPECT().
			BookedTimes(gomock.Any(), categoryID, gomock.Any()).
			Return([]string{"09:00", "14:30"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(categoryID, res.CategoryID)
		s.Equal(date, res.Date)
		s.Equal([]string{"09:00", "14:30"}, res.BookedTimes)
	})

	s.Run("no bookings yields an empty array, not null", func() {
		s.mockCatalog.EXPECT().
			BookedTimes(gomock.Any(), categoryID, gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"bookedTimes":[]`)
	})

	s.Run("invalid category id maps to 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/consultations/categories/nope/availability?date="+date, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid category ID format")
	})

	s.Run("missing date maps to 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/consultations/categories/"+categoryID.String()+"/availability", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}

func (s *CatalogHandlerTestSuite) TestCheckSlot() {
	categoryID := uuid.New()
	date := builder.Tomorrow().Format("2006-01-02")
	url := "/consultations/categories/" + categoryID.String() + "/slot-check?date=" + date + "&start=10:00"

	s.Run("free slot reports available", func() {
		s.mockCatalog.EXPECT().
			IsSlotFree(gomock.Any(), categoryID, gomock.Any(), consultation.NewTimeOfDay(10, 0)).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.SlotCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(categoryID, res.CategoryID)
		s.Equal(date, res.Date)
		s.Equal("10:00", res.Start)
		s.True(res.Available)
	})

	s.Run("taken slot reports unavailable", func() {
		s.mockCatalog.EXPECT().
			IsSlotFree(gomock.Any(), categoryID, gomock.Any(), consultation.NewTimeOfDay(10, 0)).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.SlotCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Available)
	})

	s.Run("malformed start time maps to 400", func() {
		bad := "/consultations/categories/" + categoryID.String() + "/slot-check?date=" + date + "&start=25:99"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bad, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start time")
	})
}
