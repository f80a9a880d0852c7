//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/handler/api"
	resdto "car-rental-core/internal/handler/dto/response"
	"car-rental-core/internal/pkg/confirmtoken"
	"car-rental-core/internal/usecase/commands"
	"car-rental-core/internal/usecase/queries"
	"car-rental-core/tests/common/builder"
	"car-rental-core/tests/common/httptest"
	commandsmock "car-rental-core/tests/mock/commands"
	queriesmock "car-rental-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockConfirmations *commandsmock.MockConfirmationCommands
	mockRentals       *commandsmock.MockRentalCommands
	mockQueries       *queriesmock.MockRentalQueries
	handler           *api.RentalHandler
	actor             queries.Actor
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockConfirmations = commandsmock.NewMockConfirmationCommands(s.mockCtrl)
	s.mockRentals = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockConfirmations, s.mockRentals, s.mockQueries)
	s.actor = queries.Actor{ID: testCustomerID, Role: queries.RoleCustomer}

	auth := stubAuth(s.actor)
	s.router.GET("/api/rentals/validate-token", s.handler.ValidateToken)
	s.router.POST("/api/rentals/send-confirmation", auth, s.handler.SendConfirmation)
	s.router.POST("/api/rentals/confirm", auth, s.handler.Confirm)
	s.router.GET("/api/rentals", auth, s.handler.List)
	s.router.GET("/api/rentals/:id", auth, s.handler.Get)
	s.router.POST("/api/rentals/:id/return", auth, s.handler.InitReturn)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

// ================================================================================
// TestSendConfirmation
// ================================================================================

func (s *RentalHandlerTestSuite) TestSendConfirmation() {
	url := "/api/rentals/send-confirmation"
	expiresAt := time.Date(2025, time.March, 2, 10, 10, 0, 0, time.UTC)

	s.Run("success: 202 Accepted", func() {
		s.mockConfirmations.EXPECT().SendConfirmation(gomock.Any(), int64(7), testCustomerID).
			Return(&commands.SendConfirmationResult{OfferID: 7, ExpiresAt: expiresAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"offerId": 7}, "bearer-token")

		var body resdto.SendConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal(int64(7), body.OfferID)
		s.True(expiresAt.Equal(body.ExpiresAt))
	})

	s.Run("error: 400 Bad Request on missing offerId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: usecase errors map to status codes", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "offer missing", err: commands.ErrOfferNotFound, expectCode: http.StatusNotFound},
			{name: "offer of another customer", err: commands.ErrNotRentalOwner, expectCode: http.StatusForbidden},
			{name: "already rented", err: commands.ErrRentalAlreadyExists, expectCode: http.StatusConflict},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockConfirmations.EXPECT().SendConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"offerId": 7}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestValidateToken
// ================================================================================

func (s *RentalHandlerTestSuite) TestValidateToken() {
	claims := confirmtoken.Claims{OfferID: 7, CustomerID: testCustomerID, ExpiresAt: time.Date(2025, time.March, 2, 10, 10, 0, 0, time.UTC)}

	s.Run("success: 200 OK without bearer token", func() {
		s.mockConfirmations.EXPECT().ValidateToken(gomock.Any(), "abc.def").Return(claims, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/validate-token?token=abc.def", nil, "")

		var body resdto.TokenValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal(int64(7), body.OfferID)
		s.Equal(testCustomerID, body.CustomerID)
	})

	s.Run("error: 400 Bad Request when token is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/validate-token", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Token is required")
	})

	s.Run("error: token failures", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "expired", err: confirmtoken.ErrExpired, expectCode: http.StatusGone, expectMsg: "expired"},
			{name: "bad signature", err: confirmtoken.ErrInvalidSignature, expectCode: http.StatusBadRequest, expectMsg: "signature"},
			{name: "malformed", err: confirmtoken.ErrMalformed, expectCode: http.StatusBadRequest, expectMsg: "malformed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockConfirmations.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Return(confirmtoken.Claims{}, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/validate-token?token=x", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *RentalHandlerTestSuite) TestConfirm() {
	url := "/api/rentals/confirm"
	b := builder.NewRentalBuilder()

	s.Run("success: 201 Created", func() {
		s.mockConfirmations.EXPECT().ConfirmWithToken(gomock.Any(), "abc.def", testCustomerID).Return(b.BuildDomain(), nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"token": "abc.def"}, "bearer-token")

		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal("confirmed", body.Status)
		s.Equal("280.00", body.TotalPrice)
	})

	s.Run("error: 400 Bad Request on empty token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"token": ""}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: usecase errors map to status codes", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "token expired", err: confirmtoken.ErrExpired, expectCode: http.StatusGone},
			{name: "token for another customer", err: commands.ErrTokenCustomerMismatch, expectCode: http.StatusForbidden},
			{name: "offer already confirmed", err: commands.ErrRentalAlreadyExists, expectCode: http.StatusConflict},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockConfirmations.EXPECT().ConfirmWithToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"token": "abc.def"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *RentalHandlerTestSuite) TestList() {
	first := builder.NewRentalBuilder().BuildView()
	second := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) { b.ID = 12; b.OfferID = 8 }).BuildView()
	next := &queries.Cursor{After: queries.EncodeAfterCursor(12)}

	s.Run("success: 200 OK with defaults", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), testCustomerID, rental.Status(0), (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return([]*queries.RentalView{first, second}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals", nil, "bearer-token")

		var body resdto.RentalListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal(next.After, body.Next)
	})

	s.Run("success: filters and cursor are passed through", func() {
		after := queries.EncodeAfterCursor(5)
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), testCustomerID, rental.StatusPendingReturn, &queries.Cursor{After: after}, 5).
			Return([]*queries.RentalView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals?status=pending_return&limit=5&after="+after, nil, "bearer-token")

		var body resdto.RentalListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Empty(body.Next)
	})

	s.Run("error: 400 Bad Request on bad query", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "unknown status", url: "/api/rentals?status=lost"},
			{name: "non-numeric limit", url: "/api/rentals?limit=ten"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *RentalHandlerTestSuite) TestGet() {
	s.Run("success: 200 OK", func() {
		view := builder.NewRentalBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, int64(11)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/11", nil, "bearer-token")

		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Toyota Corolla", body.CarName)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, int64(11)).Return(nil, queries.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/11", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "rental not found")
	})
}

// ================================================================================
// TestInitReturn
// ================================================================================

func (s *RentalHandlerTestSuite) TestInitReturn() {
	url := "/api/rentals/11/return"

	s.Run("success: 200 OK with pending_return status", func() {
		view := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) { b.Status = rental.StatusPendingReturn }).BuildView()
		gomock.InOrder(
			s.mockRentals.EXPECT().InitReturn(gomock.Any(), int64(11), testCustomerID).Return(nil),
			s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, int64(11)).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("pending_return", body.Status)
	})

	s.Run("error: usecase errors map to status codes", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "not confirmed", err: rental.ErrNotConfirmed, expectCode: http.StatusConflict},
			{name: "not the owner", err: commands.ErrNotRentalOwner, expectCode: http.StatusForbidden},
			{name: "missing", err: commands.ErrRentalNotFound, expectCode: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRentals.EXPECT().InitReturn(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}
