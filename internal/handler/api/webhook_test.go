//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"legalbook/internal/handler/api"
	"legalbook/internal/usecase/commands"
	"legalbook/tests/common/httptest"
	commandsmock "legalbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockSettlement *commandsmock.MockSettlementCommands
	handler        *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettlement = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockSettlement)

	// No auth middleware: the signature is the authentication.
	s.router.POST("/webhooks/stripe", s.handler.HandleStripe)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHandleStripe() {
	url := "/webhooks/stripe"
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	headers := map[string]string{"Stripe-Signature": "t=123,v1=abc"}

	s.Run("success: acknowledges the event with 200", func() {
		s.mockSettlement.EXPECT().
			HandleWebhook(gomock.Any(), payload, "t=123,v1=abc").
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("raw body reaches the verifier untouched", func() {
		// Whitespace and key order must survive: the signature covers the
		// exact bytes on the wire.
		raw := []byte("{\n  \"type\": \"payment_intent.succeeded\"\n}")
		s.mockSettlement.EXPECT().
			HandleWebhook(gomock.Any(), raw, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, raw, headers)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid signature maps to 400", func() {
		s.mockSettlement.EXPECT().
			HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrInvalidSignature).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook signature")
	})

	s.Run("processing failure maps to 500 so the provider retries", func() {
		s.mockSettlement.EXPECT().
			HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database operation failed")).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
