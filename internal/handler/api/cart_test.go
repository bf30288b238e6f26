//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/handler/api"
	resdto "legalbook/internal/handler/dto/response"
	"legalbook/internal/pkg/errs"
	"legalbook/internal/usecase/commands"
	"legalbook/internal/usecase/queries"
	"legalbook/tests/common/builder"
	"legalbook/tests/common/httptest"
	"legalbook/tests/common/testutil"
	commandsmock "legalbook/tests/mock/commands"
	queriesmock "legalbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.GET("/consultations/cart", authMiddleware, s.handler.Get)
	s.router.DELETE("/consultations/cart", authMiddleware, s.handler.Clear)
	s.router.POST("/consultations/cart/items", authMiddleware, s.handler.AddItem)
	s.router.PATCH("/consultations/cart/items/:id", authMiddleware, s.handler.UpdateItem)
	s.router.DELETE("/consultations/cart/items/:id", authMiddleware, s.handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGet() {
	url := "/consultations/cart"

	s.Run("success: returns the cart with live totals", func() {
		category := builder.NewCategoryBuilder()
		view := &queries.CartView{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Items: []*queries.CartItemView{{
				ID:              uuid.New(),
				CategoryID:      category.ID,
				CategoryName:    string(category.Name),
				Date:            builder.Tomorrow().Format("2006-01-02"),
				Start:           "10:00",
				DurationMin:     60,
				UnitPriceCents:  category.PricePer15MinCents,
				TotalPriceCents: category.PricePer15MinCents * 4,
				AddedAt:         time.Now(),
			}},
			TotalCents: category.PricePer15MinCents * 4,
		}

		s.mockQueries.EXPECT().
			GetByUser(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 1)
		s.Equal(view.TotalCents, res.TotalCents)
	})

	s.Run("unauthenticated request is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/consultations/cart/items"
	reqBody := builder.NewAppointmentRequestBuilder().BuildAddCartItemRequestDTO()

	s.Run("success: returns 201 with the new item id", func() {
		itemID := uuid.New()
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(itemID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var res resdto.AddCartItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(itemID, res.ID)
	})

	s.Run("malformed start time is rejected before the command runs", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("start", "25:99"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("unknown category maps to 404", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrCategoryNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Category not found")
	})

	s.Run("paid slot maps to 409", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrSlotAlreadyPaid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot has already been paid for")
	})

	s.Run("invalid slot maps to 422", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid consultation slot")
	})

	s.Run("validation failure names the offending field", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(consultation.ErrEndsAfterClose, commands.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Slot would run past 18:00")
		var body struct {
			Detail struct {
				Field string `json:"field"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("durationMin", body.Detail.Field)
	})
}

func (s *CartHandlerTestSuite) TestUpdateItem() {
	itemID := uuid.New()
	url := "/consultations/cart/items/" + itemID.String()

	s.Run("success: partial update returns 204", func() {
		s.mockCommands.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), itemID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"durationMin": 30}, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("invalid id format maps to 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/consultations/cart/items/not-a-uuid", map[string]any{"durationMin": 30}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cart item ID format")
	})

	s.Run("unknown item maps to 404", func() {
		s.mockCommands.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), itemID, gomock.Any()).
			Return(commands.ErrCartItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"durationMin": 30}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	itemID := uuid.New()
	url := "/consultations/cart/items/" + itemID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			RemoveItem(gomock.Any(), gomock.Any(), itemID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown item maps to 404", func() {
		s.mockCommands.EXPECT().
			RemoveItem(gomock.Any(), gomock.Any(), itemID).
			Return(commands.ErrCartItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	url := "/consultations/cart"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})
}
